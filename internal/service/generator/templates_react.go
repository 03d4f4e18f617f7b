package generator

import (
	"regexp"
	"strings"

	"webcraft/internal/domain/models/codegen"
)

var nonIdentRe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// componentName turns a title into a PascalCase identifier
func componentName(title, def string) string {
	parts := nonIdentRe.Split(title, -1)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return def
	}
	return name
}

func reactComponent(p codegen.Params) []codegen.CodeBlock {
	name := componentName(p.Title, "ProfileCard")
	subject := jsxText(p.Subject, "a reusable React component")

	code := fill(`import React from 'react';

export default function {{name}}({ title = '{{name}}', children }) {
  return (
    <div style={styles.card}>
      <h2 style={styles.title}>{title}</h2>
      <p style={styles.body}>This is {{subject}}.</p>
      {children}
    </div>
  );
}

const styles = {
  card: {
    padding: '1.5rem',
    borderRadius: '12px',
    background: '#ffffff',
    boxShadow: '0 4px 14px rgba(0, 0, 0, 0.08)',
    maxWidth: '360px',
  },
  title: { margin: '0 0 0.5rem', fontSize: '1.25rem' },
  body: { margin: 0, color: '#4b5563' },
};`, "name", name, "subject", subject)

	return []codegen.CodeBlock{jsxBlock(code)}
}

func reactCounter(p codegen.Params) []codegen.CodeBlock {
	name := componentName(p.Title, "Counter")

	code := fill(`import React, { useState } from 'react';

export default function {{name}}({ initial = 0, step = 1 }) {
  const [count, setCount] = useState(initial);

  return (
    <div style={{ textAlign: 'center', fontFamily: 'system-ui, sans-serif' }}>
      <h2>{count}</h2>
      <button onClick={() => setCount((c) => c - step)}>-</button>
      <button onClick={() => setCount(initial)} style={{ margin: '0 0.5rem' }}>
        Reset
      </button>
      <button onClick={() => setCount((c) => c + step)}>+</button>
    </div>
  );
}`, "name", name)

	return []codegen.CodeBlock{jsxBlock(code)}
}

func reactTodo(p codegen.Params) []codegen.CodeBlock {
	name := componentName(p.Title, "TodoApp")

	code := fill(`import React, { useState } from 'react';

export default function {{name}}() {
  const [todos, setTodos] = useState([]);
  const [text, setText] = useState('');

  const addTodo = (event) => {
    event.preventDefault();
    const value = text.trim();
    if (!value) return;
    setTodos((prev) => [...prev, { id: Date.now(), text: value, done: false }]);
    setText('');
  };

  const toggle = (id) =>
    setTodos((prev) => prev.map((t) => (t.id === id ? { ...t, done: !t.done } : t)));

  const remove = (id) => setTodos((prev) => prev.filter((t) => t.id !== id));

  return (
    <div style={{ maxWidth: 420, margin: '2rem auto', fontFamily: 'system-ui, sans-serif' }}>
      <form onSubmit={addTodo} style={{ display: 'flex', gap: 8 }}>
        <input
          value={text}
          onChange={(e) => setText(e.target.value)}
          placeholder="Add a task"
          style={{ flex: 1 }}
        />
        <button type="submit">Add</button>
      </form>
      <ul style={{ listStyle: 'none', padding: 0 }}>
        {todos.map((todo) => (
          <li key={todo.id} style={{ display: 'flex', gap: 8, padding: '6px 0' }}>
            <input type="checkbox" checked={todo.done} onChange={() => toggle(todo.id)} />
            <span style={{ textDecoration: todo.done ? 'line-through' : 'none', flex: 1 }}>
              {todo.text}
            </span>
            <button onClick={() => remove(todo.id)}>Delete</button>
          </li>
        ))}
      </ul>
      <p>{todos.filter((t) => !t.done).length} remaining</p>
    </div>
  );
}`, "name", name)

	return []codegen.CodeBlock{jsxBlock(code)}
}
