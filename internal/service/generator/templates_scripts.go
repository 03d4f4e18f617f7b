package generator

import "webcraft/internal/domain/models/codegen"

const demoCSS = `
.demo { max-width: 560px; margin: 3rem auto; padding: 2rem; background: #fff; border-radius: 14px; box-shadow: 0 6px 20px rgba(0,0,0,0.06); }
.demo h1 { margin-bottom: 1rem; }
.demo button { padding: 0.55rem 1.1rem; border: none; border-radius: 8px; background: #2563eb; color: #fff; cursor: pointer; }`

func todoList(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Todo List")

	html := demo(title, `    <form id="todoForm" class="todo-form">
      <input id="todoInput" placeholder="What needs doing?" autocomplete="off">
      <button type="submit">Add</button>
    </form>
    <ul id="todoList" class="todo-list"></ul>
    <p id="todoCount" class="todo-count"></p>`)

	css := baseCSS + demoCSS + `
.todo-form { display: flex; gap: 0.5rem; }
.todo-form input { flex: 1; padding: 0.55rem; border: 1px solid #d1d5db; border-radius: 8px; }
.todo-list { list-style: none; margin-top: 1rem; }
.todo-list li { display: flex; align-items: center; gap: 0.5rem; padding: 0.5rem 0; border-bottom: 1px solid #f3f4f6; }
.todo-list li.done span { text-decoration: line-through; color: #9ca3af; }
.todo-list li button { margin-left: auto; background: #ef4444; padding: 0.25rem 0.6rem; }
.todo-count { margin-top: 0.75rem; color: #6b7280; font-size: 0.9rem; }`

	js := `const todos = [];
const list = document.getElementById('todoList');

function render() {
  list.innerHTML = '';
  todos.forEach((todo, index) => {
    const li = document.createElement('li');
    li.className = todo.done ? 'done' : '';
    const check = document.createElement('input');
    check.type = 'checkbox';
    check.checked = todo.done;
    check.addEventListener('change', () => { todo.done = check.checked; render(); });
    const label = document.createElement('span');
    label.textContent = todo.text;
    const remove = document.createElement('button');
    remove.textContent = 'Delete';
    remove.addEventListener('click', () => { todos.splice(index, 1); render(); });
    li.append(check, label, remove);
    list.appendChild(li);
  });
  const left = todos.filter((t) => !t.done).length;
  document.getElementById('todoCount').textContent = left + ' item' + (left === 1 ? '' : 's') + ' left';
}

document.getElementById('todoForm').addEventListener('submit', (event) => {
  event.preventDefault();
  const input = document.getElementById('todoInput');
  const value = input.value.trim();
  if (!value) return;
  todos.push({ text: value, done: false });
  input.value = '';
  render();
});

render();`

	return []codegen.CodeBlock{html, cssBlock(css), jsBlock(js)}
}

func modalDialog(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Modal Dialog")

	html := demo(title, `    <button id="openModal">Open modal</button>
    <div id="modal" class="modal" hidden>
      <div class="modal-backdrop" data-close></div>
      <div class="modal-panel" role="dialog" aria-modal="true" aria-labelledby="modalTitle">
        <h2 id="modalTitle">Hello there</h2>
        <p>Press Escape, click outside or use the button to close.</p>
        <button data-close>Close</button>
      </div>
    </div>`)

	css := baseCSS + demoCSS + `
.modal { position: fixed; inset: 0; display: grid; place-items: center; }
.modal[hidden] { display: none; }
.modal-backdrop { position: absolute; inset: 0; background: rgba(15,23,42,0.55); }
.modal-panel { position: relative; background: #fff; padding: 2rem; border-radius: 14px; width: min(420px, 90vw); animation: pop 0.18s ease-out; }
.modal-panel h2 { margin-bottom: 0.5rem; }
.modal-panel button { margin-top: 1.25rem; }
@keyframes pop { from { transform: scale(0.92); opacity: 0; } to { transform: scale(1); opacity: 1; } }`

	js := `const modal = document.getElementById('modal');

function openModal() { modal.hidden = false; }
function closeModal() { modal.hidden = true; }

document.getElementById('openModal').addEventListener('click', openModal);
modal.querySelectorAll('[data-close]').forEach((el) => el.addEventListener('click', closeModal));
document.addEventListener('keydown', (event) => {
  if (event.key === 'Escape' && !modal.hidden) closeModal();
});`

	return []codegen.CodeBlock{html, cssBlock(css), jsBlock(js)}
}

func apiFetch(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "API Fetch")

	html := demo(title, `    <button id="loadUsers">Load users</button>
    <p id="fetchStatus" class="status"></p>
    <ul id="userList" class="users"></ul>`)

	css := baseCSS + demoCSS + `
.status { margin-top: 0.75rem; color: #6b7280; }
.users { list-style: none; margin-top: 1rem; }
.users li { padding: 0.6rem 0; border-bottom: 1px solid #f3f4f6; }
.users li small { display: block; color: #6b7280; }`

	js := `const status = document.getElementById('fetchStatus');
const list = document.getElementById('userList');

async function loadUsers() {
  status.textContent = 'Loading...';
  list.innerHTML = '';
  try {
    const response = await fetch('https://jsonplaceholder.typicode.com/users');
    if (!response.ok) throw new Error('HTTP ' + response.status);
    const users = await response.json();
    users.forEach((user) => {
      const li = document.createElement('li');
      li.textContent = user.name;
      const email = document.createElement('small');
      email.textContent = user.email;
      li.appendChild(email);
      list.appendChild(li);
    });
    status.textContent = 'Loaded ' + users.length + ' users.';
  } catch (err) {
    status.textContent = 'Request failed: ' + err.message;
  }
}

document.getElementById('loadUsers').addEventListener('click', loadUsers);`

	return []codegen.CodeBlock{html, cssBlock(css), jsBlock(js)}
}

func clickCounter(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Counter")

	html := demo(title, `    <div class="counter">
      <button id="decrement">-</button>
      <span id="count">0</span>
      <button id="increment">+</button>
    </div>
    <button id="reset" class="reset">Reset</button>`)

	css := baseCSS + demoCSS + `
.counter { display: flex; align-items: center; justify-content: center; gap: 1.5rem; margin: 1.5rem 0; }
.counter span { font-size: 3rem; font-weight: 700; min-width: 3ch; text-align: center; }
.counter button { font-size: 1.5rem; width: 3rem; height: 3rem; border-radius: 50%; }
.reset { display: block; margin: 0 auto; background: #6b7280 !important; }`

	js := `let count = 0;
const display = document.getElementById('count');

function update(delta) {
  count = delta === null ? 0 : count + delta;
  display.textContent = String(count);
}

document.getElementById('increment').addEventListener('click', () => update(1));
document.getElementById('decrement').addEventListener('click', () => update(-1));
document.getElementById('reset').addEventListener('click', () => update(null));`

	return []codegen.CodeBlock{html, cssBlock(css), jsBlock(js)}
}

func themeToggle(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Theme Toggle")

	html := demo(title, `    <p>Switch between light and dark mode. Your choice is remembered.</p>
    <button id="themeToggle" aria-pressed="false">Toggle dark mode</button>`)

	css := baseCSS + demoCSS + `
body { transition: background 0.25s, color 0.25s; }
body.dark { background: #0f172a; color: #e2e8f0; }
body.dark .demo { background: #1e293b; }
.demo p { margin-bottom: 1rem; }`

	js := `const toggle = document.getElementById('themeToggle');

function applyTheme(dark) {
  document.body.classList.toggle('dark', dark);
  toggle.setAttribute('aria-pressed', String(dark));
  toggle.textContent = dark ? 'Switch to light mode' : 'Switch to dark mode';
}

let dark = false;
try { dark = localStorage.getItem('theme') === 'dark'; } catch (e) {}
applyTheme(dark);

toggle.addEventListener('click', () => {
  dark = !dark;
  applyTheme(dark);
  try { localStorage.setItem('theme', dark ? 'dark' : 'light'); } catch (e) {}
});`

	return []codegen.CodeBlock{html, cssBlock(css), jsBlock(js)}
}

func countdownTimer(p codegen.Params) []codegen.CodeBlock {
	title := text(p.Title, "Countdown Timer")

	html := demo(title, `    <div class="timer" id="timerDisplay">05:00</div>
    <div class="timer-controls">
      <button id="timerStart">Start</button>
      <button id="timerPause">Pause</button>
      <button id="timerReset">Reset</button>
    </div>`)

	css := baseCSS + demoCSS + `
.timer { font-size: 4rem; font-variant-numeric: tabular-nums; text-align: center; margin: 1rem 0; }
.timer.finished { color: #dc2626; }
.timer-controls { display: flex; justify-content: center; gap: 0.75rem; }`

	js := `const START = 5 * 60;
let remaining = START;
let handle = null;
const display = document.getElementById('timerDisplay');

function render() {
  const m = String(Math.floor(remaining / 60)).padStart(2, '0');
  const s = String(remaining % 60).padStart(2, '0');
  display.textContent = m + ':' + s;
  display.classList.toggle('finished', remaining === 0);
}

function tick() {
  if (remaining > 0) {
    remaining--;
    render();
  }
  if (remaining === 0) pause();
}

function start() { if (!handle && remaining > 0) handle = setInterval(tick, 1000); }
function pause() { clearInterval(handle); handle = null; }
function reset() { pause(); remaining = START; render(); }

document.getElementById('timerStart').addEventListener('click', start);
document.getElementById('timerPause').addEventListener('click', pause);
document.getElementById('timerReset').addEventListener('click', reset);
render();`

	return []codegen.CodeBlock{html, cssBlock(css), jsBlock(js)}
}
