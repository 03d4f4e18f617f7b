package generator

import "webcraft/internal/domain/models/codegen"

func cardStyles(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Card Components")

	html := demo(title, `    <div class="cards">
      <article class="card">
        <div class="card-media"></div>
        <div class="card-body">
          <h2>Card title</h2>
          <p>Short supporting text for this card.</p>
          <a href="#" class="card-link">Read more</a>
        </div>
      </article>
      <article class="card">
        <div class="card-media"></div>
        <div class="card-body">
          <h2>Another card</h2>
          <p>Cards lift slightly when hovered.</p>
          <a href="#" class="card-link">Read more</a>
        </div>
      </article>
    </div>`)

	css := baseCSS + `
.demo { max-width: 960px; margin: 3rem auto; padding: 0 1rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1.5rem; margin-top: 1.5rem; }
.card { background: #fff; border-radius: 16px; overflow: hidden; box-shadow: 0 4px 14px rgba(0,0,0,0.08); transition: transform 0.2s ease, box-shadow 0.2s ease; }
.card:hover { transform: translateY(-6px); box-shadow: 0 14px 30px rgba(0,0,0,0.12); }
.card-media { height: 160px; background: linear-gradient(120deg, #f472b6, #818cf8); }
.card-body { padding: 1.25rem; }
.card-body h2 { font-size: 1.2rem; margin-bottom: 0.5rem; }
.card-link { display: inline-block; margin-top: 0.75rem; color: #6366f1; font-weight: 600; text-decoration: none; }`

	return []codegen.CodeBlock{html, cssBlock(css)}
}

func buttonStyles(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Button Styles")

	html := demo(title, `    <div class="buttons">
      <button class="btn btn-primary">Primary</button>
      <button class="btn btn-outline">Outline</button>
      <button class="btn btn-ghost">Ghost</button>
      <button class="btn btn-gradient">Gradient</button>
      <button class="btn btn-primary" disabled>Disabled</button>
    </div>`)

	css := baseCSS + `
.demo { max-width: 760px; margin: 3rem auto; padding: 0 1rem; }
.buttons { display: flex; flex-wrap: wrap; gap: 1rem; margin-top: 1.5rem; }
.btn { padding: 0.7rem 1.5rem; border-radius: 999px; font-weight: 600; font-size: 0.95rem; cursor: pointer; border: 2px solid transparent; transition: all 0.15s ease; }
.btn:active { transform: scale(0.97); }
.btn:disabled { opacity: 0.5; cursor: not-allowed; }
.btn-primary { background: #2563eb; color: #fff; }
.btn-primary:hover:not(:disabled) { background: #1d4ed8; }
.btn-outline { background: transparent; border-color: #2563eb; color: #2563eb; }
.btn-outline:hover { background: #2563eb; color: #fff; }
.btn-ghost { background: transparent; color: #374151; }
.btn-ghost:hover { background: #e5e7eb; }
.btn-gradient { background: linear-gradient(90deg, #ec4899, #8b5cf6); color: #fff; }
.btn-gradient:hover { box-shadow: 0 6px 18px rgba(139,92,246,0.4); }`

	return []codegen.CodeBlock{html, cssBlock(css)}
}

func gridLayout(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Responsive Grid")

	html := demo(title, `    <div class="grid">
      <div class="cell cell-wide">Header</div>
      <div class="cell">Sidebar</div>
      <div class="cell cell-main">Main content</div>
      <div class="cell">Aside</div>
      <div class="cell cell-wide">Footer</div>
    </div>`)

	css := baseCSS + `
.demo { max-width: 1100px; margin: 2rem auto; padding: 0 1rem; }
.grid { display: grid; grid-template-columns: 200px 1fr 200px; gap: 1rem; margin-top: 1.5rem; }
.cell { background: #e0f2fe; border-radius: 10px; padding: 1.5rem; min-height: 100px; display: flex; align-items: center; justify-content: center; font-weight: 600; color: #0369a1; }
.cell-wide { grid-column: 1 / -1; }
.cell-main { min-height: 260px; background: #bae6fd; }
@media (max-width: 768px) {
  .grid { grid-template-columns: 1fr; }
}`

	return []codegen.CodeBlock{html, cssBlock(css)}
}

func animations(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "CSS Animations")

	html := demo(title, `    <div class="showcase">
      <div class="spinner" aria-label="Loading"></div>
      <div class="pulse"></div>
      <p class="fade-in">This text fades in.</p>
      <div class="bounce">&#9679;</div>
    </div>`)

	css := baseCSS + `
.demo { max-width: 760px; margin: 3rem auto; padding: 0 1rem; }
.showcase { display: flex; flex-wrap: wrap; gap: 2.5rem; align-items: center; margin-top: 2rem; }
.spinner { width: 48px; height: 48px; border: 5px solid #e5e7eb; border-top-color: #6366f1; border-radius: 50%; animation: spin 0.9s linear infinite; }
.pulse { width: 48px; height: 48px; border-radius: 50%; background: #f43f5e; animation: pulse 1.4s ease-in-out infinite; }
.fade-in { animation: fadeIn 1.5s ease forwards; opacity: 0; }
.bounce { font-size: 2rem; color: #10b981; animation: bounce 1s ease infinite; }
@keyframes spin { to { transform: rotate(360deg); } }
@keyframes pulse { 0%, 100% { transform: scale(1); opacity: 1; } 50% { transform: scale(1.3); opacity: 0.6; } }
@keyframes fadeIn { to { opacity: 1; } }
@keyframes bounce { 0%, 100% { transform: translateY(0); } 50% { transform: translateY(-16px); } }`

	return []codegen.CodeBlock{html, cssBlock(css)}
}
