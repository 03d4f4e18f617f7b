package generator

import "webcraft/internal/domain/models/codegen"

func basicPage(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "My Page")
	subject := text(p.Subject, "something great")

	body := fill(`  <header class="site-header">
    <h1>{{title}}</h1>
  </header>
  <main class="content">
    <section>
      <h2>Welcome</h2>
      <p>This page is about {{subject}}. Replace this text with your own content.</p>
    </section>
  </main>
  <footer class="site-footer">
    <p>&copy; {{title}}</p>
  </footer>`, "title", title, "subject", subject)

	css := baseCSS + `
.site-header { background: #111827; color: #fff; padding: 2rem; text-align: center; }
.content { max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
.content h2 { margin-bottom: 0.5rem; }
.site-footer { text-align: center; padding: 1.5rem; color: #6b7280; }`

	return []codegen.CodeBlock{htmlBlock(page(title, body)), cssBlock(css)}
}

func landingPage(p codegen.Params) []codegen.CodeBlock {
	brand := text(p.Title, "Brand")
	subject := text(p.Subject, "modern teams")

	body := fill(`  <nav class="nav">
    <span class="logo">{{brand}}</span>
    <a href="#features">Features</a>
    <a href="#signup" class="nav-cta">Get started</a>
  </nav>
  <section class="hero">
    <h1>{{brand}} helps {{subject}} ship faster</h1>
    <p>Everything you need to launch, in one place.</p>
    <a href="#signup" class="btn">Start free trial</a>
  </section>
  <section id="features" class="features">
    <article><h3>Fast</h3><p>Built for speed from day one.</p></article>
    <article><h3>Simple</h3><p>No setup, no learning curve.</p></article>
    <article><h3>Secure</h3><p>Your data stays yours.</p></article>
  </section>
  <section id="signup" class="signup">
    <h2>Ready to try {{brand}}?</h2>
    <button id="ctaButton" class="btn">Join the waitlist</button>
    <p id="ctaMessage" class="cta-message" hidden>Thanks! We'll be in touch.</p>
  </section>`, "brand", brand, "subject", subject)

	css := baseCSS + `
.nav { display: flex; gap: 1.5rem; align-items: center; padding: 1rem 2rem; }
.logo { font-weight: 700; font-size: 1.25rem; margin-right: auto; }
.nav-cta { background: #4f46e5; color: #fff; padding: 0.5rem 1rem; border-radius: 6px; text-decoration: none; }
.hero { text-align: center; padding: 6rem 1rem; background: linear-gradient(135deg, #4f46e5, #9333ea); color: #fff; }
.hero h1 { font-size: 2.75rem; margin-bottom: 1rem; }
.btn { display: inline-block; margin-top: 1.5rem; padding: 0.75rem 1.75rem; border: none; border-radius: 8px; background: #f59e0b; color: #111827; font-weight: 600; cursor: pointer; text-decoration: none; }
.features { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1.5rem; max-width: 960px; margin: 4rem auto; padding: 0 1rem; }
.features article { background: #fff; padding: 1.5rem; border-radius: 12px; box-shadow: 0 4px 12px rgba(0,0,0,0.06); }
.signup { text-align: center; padding: 4rem 1rem; }
.cta-message { margin-top: 1rem; color: #059669; }`

	js := `document.getElementById('ctaButton').addEventListener('click', function () {
  document.getElementById('ctaMessage').hidden = false;
  this.disabled = true;
});`

	return []codegen.CodeBlock{htmlBlock(page(brand, body)), cssBlock(css), jsBlock(js)}
}

func contactForm(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Contact Us")

	body := fill(`  <main class="form-wrapper">
    <h1>{{title}}</h1>
    <form id="contactForm">
      <label for="name">Name</label>
      <input id="name" name="name" type="text" required>
      <span class="error" data-for="name"></span>

      <label for="email">Email</label>
      <input id="email" name="email" type="email" required>
      <span class="error" data-for="email"></span>

      <label for="message">Message</label>
      <textarea id="message" name="message" rows="5" required></textarea>
      <span class="error" data-for="message"></span>

      <button type="submit">Send message</button>
      <p id="formStatus" class="status" role="status"></p>
    </form>
  </main>`, "title", title)

	css := baseCSS + `
.form-wrapper { max-width: 480px; margin: 3rem auto; background: #fff; padding: 2rem; border-radius: 12px; box-shadow: 0 8px 24px rgba(0,0,0,0.08); }
.form-wrapper h1 { margin-bottom: 1.5rem; }
#contactForm { display: flex; flex-direction: column; gap: 0.35rem; }
#contactForm input, #contactForm textarea { padding: 0.65rem; border: 1px solid #d1d5db; border-radius: 6px; font: inherit; }
#contactForm input.invalid, #contactForm textarea.invalid { border-color: #dc2626; }
.error { color: #dc2626; font-size: 0.85rem; min-height: 1rem; }
#contactForm button { margin-top: 1rem; padding: 0.75rem; border: none; border-radius: 6px; background: #2563eb; color: #fff; font-weight: 600; cursor: pointer; }
.status { margin-top: 0.75rem; color: #059669; }`

	js := `const form = document.getElementById('contactForm');
form.noValidate = true;

const rules = {
  name: (v) => v.trim().length >= 2 || 'Please enter your name',
  email: (v) => /^[^\s@]+@[^\s@]+\.[^\s@]+$/.test(v) || 'Please enter a valid email',
  message: (v) => v.trim().length >= 10 || 'Message must be at least 10 characters'
};

form.addEventListener('submit', (event) => {
  event.preventDefault();
  let valid = true;
  Object.keys(rules).forEach((field) => {
    const input = form.elements[field];
    const result = rules[field](input.value);
    const error = form.querySelector('.error[data-for="' + field + '"]');
    if (result === true) {
      input.classList.remove('invalid');
      error.textContent = '';
    } else {
      input.classList.add('invalid');
      error.textContent = result;
      valid = false;
    }
  });
  if (valid) {
    document.getElementById('formStatus').textContent = 'Thanks! Your message has been sent.';
    form.reset();
  }
});`

	return []codegen.CodeBlock{htmlBlock(page(title, body)), cssBlock(css), jsBlock(js)}
}

func loginPage(p codegen.Params) []codegen.CodeBlock {
	brand := text(p.Title, "Brand")

	body := fill(`  <main class="login">
    <form class="login-card" id="loginForm">
      <h1>Sign in to {{brand}}</h1>
      <label for="loginEmail">Email</label>
      <input id="loginEmail" type="email" autocomplete="email" required>
      <label for="loginPassword">Password</label>
      <input id="loginPassword" type="password" autocomplete="current-password" required>
      <button type="submit">Sign in</button>
      <a href="#" class="forgot">Forgot your password?</a>
    </form>
  </main>`, "brand", brand)

	css := baseCSS + `
.login { min-height: 100vh; display: grid; place-items: center; background: #eef2ff; }
.login-card { width: min(380px, 92vw); background: #fff; padding: 2rem; border-radius: 14px; box-shadow: 0 10px 30px rgba(79,70,229,0.15); display: flex; flex-direction: column; gap: 0.5rem; }
.login-card h1 { font-size: 1.4rem; margin-bottom: 1rem; }
.login-card input { padding: 0.65rem; border: 1px solid #c7d2fe; border-radius: 8px; }
.login-card button { margin-top: 1rem; padding: 0.75rem; border: none; border-radius: 8px; background: #4f46e5; color: #fff; font-weight: 600; cursor: pointer; }
.forgot { font-size: 0.85rem; color: #4f46e5; text-align: center; margin-top: 0.5rem; }`

	return []codegen.CodeBlock{htmlBlock(page("Sign in - "+brand, body)), cssBlock(css)}
}

func navbar(p codegen.Params) []codegen.CodeBlock {
	brand := text(p.Title, "Brand")

	body := fill(`  <nav class="navbar">
    <a href="#" class="navbar-brand">{{brand}}</a>
    <button class="navbar-toggle" id="navToggle" aria-expanded="false" aria-controls="navMenu">&#9776;</button>
    <ul class="navbar-menu" id="navMenu">
      <li><a href="#">Home</a></li>
      <li><a href="#">About</a></li>
      <li><a href="#">Services</a></li>
      <li><a href="#">Contact</a></li>
    </ul>
  </nav>`, "brand", brand)

	css := baseCSS + `
.navbar { display: flex; align-items: center; justify-content: space-between; flex-wrap: wrap; padding: 1rem 2rem; background: #111827; color: #fff; }
.navbar-brand { font-weight: 700; font-size: 1.25rem; text-decoration: none; }
.navbar-menu { display: flex; gap: 1.5rem; list-style: none; }
.navbar-menu a { text-decoration: none; opacity: 0.85; }
.navbar-menu a:hover { opacity: 1; }
.navbar-toggle { display: none; background: none; border: none; color: #fff; font-size: 1.5rem; cursor: pointer; }
@media (max-width: 640px) {
  .navbar-toggle { display: block; }
  .navbar-menu { display: none; width: 100%; flex-direction: column; gap: 0.75rem; padding-top: 1rem; }
  .navbar-menu.open { display: flex; }
}`

	js := `const toggle = document.getElementById('navToggle');
const menu = document.getElementById('navMenu');
toggle.addEventListener('click', () => {
  const open = menu.classList.toggle('open');
  toggle.setAttribute('aria-expanded', String(open));
});`

	return []codegen.CodeBlock{htmlBlock(page(brand, body)), cssBlock(css), jsBlock(js)}
}

func dashboard(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Dashboard")

	body := fill(`  <div class="layout">
    <aside class="sidebar">
      <h2>{{title}}</h2>
      <a href="#" class="active">Overview</a>
      <a href="#">Reports</a>
      <a href="#">Users</a>
      <a href="#">Settings</a>
    </aside>
    <main class="main">
      <section class="stats">
        <div class="stat"><span>Users</span><strong id="statUsers">0</strong></div>
        <div class="stat"><span>Revenue</span><strong id="statRevenue">$0</strong></div>
        <div class="stat"><span>Orders</span><strong id="statOrders">0</strong></div>
      </section>
      <section class="chart-card">
        <h3>Weekly activity</h3>
        <div class="chart" id="chart"></div>
      </section>
    </main>
  </div>`, "title", title)

	css := baseCSS + `
.layout { display: grid; grid-template-columns: 220px 1fr; min-height: 100vh; }
.sidebar { background: #1e293b; color: #cbd5e1; padding: 1.5rem; display: flex; flex-direction: column; gap: 0.75rem; }
.sidebar h2 { color: #fff; margin-bottom: 1rem; }
.sidebar a { text-decoration: none; padding: 0.4rem 0.6rem; border-radius: 6px; }
.sidebar a.active, .sidebar a:hover { background: #334155; color: #fff; }
.main { padding: 2rem; }
.stats { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
.stat { background: #fff; border-radius: 12px; padding: 1.25rem; box-shadow: 0 2px 8px rgba(0,0,0,0.05); display: flex; flex-direction: column; }
.stat strong { font-size: 1.75rem; }
.chart-card { margin-top: 1.5rem; background: #fff; border-radius: 12px; padding: 1.25rem; }
.chart { display: flex; align-items: flex-end; gap: 0.75rem; height: 180px; margin-top: 1rem; }
.chart .bar { flex: 1; background: #6366f1; border-radius: 6px 6px 0 0; }`

	js := `const data = [12, 19, 7, 15, 22, 18, 25];
const chart = document.getElementById('chart');
const max = Math.max.apply(null, data);
data.forEach((value) => {
  const bar = document.createElement('div');
  bar.className = 'bar';
  bar.style.height = (value / max * 100) + '%';
  bar.title = String(value);
  chart.appendChild(bar);
});
document.getElementById('statUsers').textContent = '1,284';
document.getElementById('statRevenue').textContent = '$48,210';
document.getElementById('statOrders').textContent = '372';`

	return []codegen.CodeBlock{htmlBlock(page(title, body)), cssBlock(css), jsBlock(js)}
}

func pricingTable(p codegen.Params) []codegen.CodeBlock {
	brand := text(p.Title, "Brand")

	body := fill(`  <section class="pricing">
    <h1>{{brand}} pricing</h1>
    <div class="plans">
      <article class="plan">
        <h2>Starter</h2>
        <p class="price">$0<span>/mo</span></p>
        <ul><li>1 project</li><li>Community support</li></ul>
        <button>Choose Starter</button>
      </article>
      <article class="plan featured">
        <h2>Pro</h2>
        <p class="price">$19<span>/mo</span></p>
        <ul><li>Unlimited projects</li><li>Priority support</li><li>Analytics</li></ul>
        <button>Choose Pro</button>
      </article>
      <article class="plan">
        <h2>Team</h2>
        <p class="price">$49<span>/mo</span></p>
        <ul><li>Everything in Pro</li><li>Shared workspaces</li><li>SSO</li></ul>
        <button>Choose Team</button>
      </article>
    </div>
  </section>`, "brand", brand)

	css := baseCSS + `
.pricing { max-width: 1000px; margin: 3rem auto; padding: 0 1rem; text-align: center; }
.plans { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1.5rem; margin-top: 2rem; }
.plan { background: #fff; border-radius: 14px; padding: 2rem; box-shadow: 0 4px 16px rgba(0,0,0,0.06); }
.plan.featured { border: 2px solid #4f46e5; transform: scale(1.04); }
.price { font-size: 2.5rem; font-weight: 700; margin: 1rem 0; }
.price span { font-size: 1rem; color: #6b7280; }
.plan ul { list-style: none; margin-bottom: 1.5rem; }
.plan button { padding: 0.7rem 1.4rem; border: none; border-radius: 8px; background: #4f46e5; color: #fff; cursor: pointer; }`

	return []codegen.CodeBlock{htmlBlock(page(brand+" Pricing", body)), cssBlock(css)}
}

func portfolio(p codegen.Params) []codegen.CodeBlock {
	name := text(p.Title, "Jane Doe")
	subject := text(p.Subject, "web developer")

	body := fill(`  <header class="intro">
    <h1>Hi, I'm {{name}}</h1>
    <p>A {{subject}} who loves building things for the web.</p>
  </header>
  <section class="gallery">
    <figure><div class="thumb"></div><figcaption>Project One</figcaption></figure>
    <figure><div class="thumb"></div><figcaption>Project Two</figcaption></figure>
    <figure><div class="thumb"></div><figcaption>Project Three</figcaption></figure>
    <figure><div class="thumb"></div><figcaption>Project Four</figcaption></figure>
  </section>`, "name", name, "subject", subject)

	css := baseCSS + `
.intro { padding: 5rem 1rem 3rem; text-align: center; }
.intro h1 { font-size: 2.5rem; }
.gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1.25rem; max-width: 1000px; margin: 0 auto 4rem; padding: 0 1rem; }
.gallery figure { background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 12px rgba(0,0,0,0.06); transition: transform 0.2s; }
.gallery figure:hover { transform: translateY(-4px); }
.thumb { height: 150px; background: linear-gradient(135deg, #0ea5e9, #6366f1); }
.gallery figcaption { padding: 0.75rem 1rem; font-weight: 600; }`

	return []codegen.CodeBlock{htmlBlock(page(name+" - Portfolio", body)), cssBlock(css)}
}

func terminal(p codegen.Params) []codegen.CodeBlock {
	host := text(p.Title, "SecureShell")

	body := fill(`  <div class="terminal">
    <div class="terminal-bar"><span></span><span></span><span></span><em>{{host}}</em></div>
    <pre class="terminal-body" id="terminalOutput"></pre>
  </div>`, "host", host)

	css := `body { margin: 0; min-height: 100vh; display: grid; place-items: center; background: #0b0f14; font-family: "Fira Code", Menlo, monospace; }
.terminal { width: min(760px, 94vw); border-radius: 10px; overflow: hidden; box-shadow: 0 0 40px rgba(34,197,94,0.15); }
.terminal-bar { background: #1f2937; padding: 0.5rem 0.75rem; display: flex; gap: 0.4rem; align-items: center; }
.terminal-bar span { width: 12px; height: 12px; border-radius: 50%; background: #ef4444; }
.terminal-bar span:nth-child(2) { background: #f59e0b; }
.terminal-bar span:nth-child(3) { background: #22c55e; }
.terminal-bar em { margin-left: auto; color: #9ca3af; font-style: normal; font-size: 0.8rem; }
.terminal-body { background: #030712; color: #22c55e; padding: 1rem; min-height: 280px; margin: 0; white-space: pre-wrap; }`

	js := `const lines = [
  '$ scan --target localhost',
  'Scanning ports 1-1024...',
  '[ok] 22/tcp   open  ssh',
  '[ok] 443/tcp  open  https',
  '[!!] 8080/tcp open  http-proxy',
  'Scan complete: 3 open ports found.'
];
const output = document.getElementById('terminalOutput');
let line = 0;
let col = 0;
function type() {
  if (line >= lines.length) return;
  if (col <= lines[line].length) {
    output.textContent = lines.slice(0, line).join('\n') + (line ? '\n' : '') + lines[line].slice(0, col);
    col++;
    setTimeout(type, 30);
  } else {
    line++;
    col = 0;
    setTimeout(type, 300);
  }
}
type();`

	return []codegen.CodeBlock{htmlBlock(page(host, body)), cssBlock(css), jsBlock(js)}
}

func shop(p codegen.Params) []codegen.CodeBlock {
	brand := text(p.Title, "Shop")

	body := fill(`  <header class="shop-header">
    <h1>{{brand}}</h1>
    <div class="cart">Cart: <span id="cartCount">0</span> items &middot; $<span id="cartTotal">0.00</span></div>
  </header>
  <main class="products">
    <article class="product" data-price="24.00"><div class="img"></div><h2>Classic Tee</h2><p>$24.00</p><button>Add to cart</button></article>
    <article class="product" data-price="59.00"><div class="img"></div><h2>Denim Jacket</h2><p>$59.00</p><button>Add to cart</button></article>
    <article class="product" data-price="12.50"><div class="img"></div><h2>Canvas Tote</h2><p>$12.50</p><button>Add to cart</button></article>
  </main>`, "brand", brand)

	css := baseCSS + `
.shop-header { display: flex; justify-content: space-between; align-items: center; padding: 1.25rem 2rem; background: #fff; box-shadow: 0 1px 0 #e5e7eb; }
.cart { font-weight: 600; }
.products { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1.5rem; max-width: 1000px; margin: 2rem auto; padding: 0 1rem; }
.product { background: #fff; border-radius: 12px; padding: 1rem; box-shadow: 0 4px 12px rgba(0,0,0,0.05); }
.product .img { height: 160px; border-radius: 8px; background: #e0e7ff; margin-bottom: 0.75rem; }
.product button { width: 100%; margin-top: 0.75rem; padding: 0.6rem; border: none; border-radius: 8px; background: #111827; color: #fff; cursor: pointer; }`

	js := `let count = 0;
let total = 0;
document.querySelectorAll('.product button').forEach((button) => {
  button.addEventListener('click', () => {
    const price = parseFloat(button.closest('.product').dataset.price);
    count += 1;
    total += price;
    document.getElementById('cartCount').textContent = String(count);
    document.getElementById('cartTotal').textContent = total.toFixed(2);
  });
});`

	return []codegen.CodeBlock{htmlBlock(page(brand, body)), cssBlock(css), jsBlock(js)}
}
