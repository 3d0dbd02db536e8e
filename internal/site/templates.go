package site

// pageTemplate is the document shell shared by every route.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}" class="{{.RootClass}}" data-live="{{if .Live}}on{{else}}off{{end}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/static/style.css">
  <noscript><style>#loading{display:none}#hero .hero-content{opacity:1;transform:none}</style></noscript>
</head>
<body>
  <nav class="navbar">
    <div class="nav-inner">
      <a href="/" class="brand" data-link>{{.Brand.Lead}}<span class="accent">{{.Brand.Accent}}</span></a>
      <div class="nav-links" id="nav-menu" data-open="false">
        {{range .Nav}}<a href="{{.Href}}" data-nav="{{.Item.Label}}">{{.Item.Label}}</a>
        {{end}}
      </div>
      <form method="post" action="/theme/toggle" id="theme-form" class="theme-form">
        <input type="hidden" name="return" value="{{.Path}}">
        <button type="submit" class="theme-toggle" aria-label="Toggle theme">
          <span class="sun" aria-hidden="true">&#9728;</span><span class="moon" aria-hidden="true">&#9790;</span>
        </button>
      </form>
      <button type="button" class="menu-toggle" id="menu-toggle" aria-label="Toggle menu">&#9776;</button>
    </div>
  </nav>
  <main>{{.Main}}</main>
  <script src="/static/live.js"></script>
</body>
</html>`

// fragmentTemplates are the swappable regions of a page.
const fragmentTemplates = `
{{define "home"}}
{{if .Intro}}
<div id="loading" class="loading" data-phase="playing">
  <div class="loading-image"></div>
  <div class="loading-glow"></div>
  <h1 class="loading-title">{{.Site.Brand.Lead}}<span class="accent">{{.Site.Brand.Accent}}</span></h1>
  <p class="loading-subtitle">{{index .Site.Hero.Headlines 0}}</p>
  <p class="loading-tagline">{{.Site.Brand.Tagline}}</p>
  <div class="loading-progress"><div class="loading-bar"></div></div>
  <div class="loading-curtain"></div>
</div>
{{end}}
<section id="hero" class="hero" data-visible="{{not .Intro}}">
  <div class="hero-orbs" data-parallax="0.04"><span class="hero-circle"></span><span class="hero-circle"></span><span class="hero-dot"></span><span class="hero-dot"></span></div>
  <div class="hero-bg"></div>
  <div class="hero-content">
    <h2 class="hero-tag hero-tagline">{{.Site.Hero.Tagline}}</h2>
    {{range $i, $h := .Site.Hero.Headlines}}<h1 class="hero-title hero-headline-{{inc $i}}">{{$h}}</h1>
    {{end}}
  </div>
</section>
<section id="about" class="section about reveal">
  <p class="eyebrow">{{.Site.About.Eyebrow}}</p>
  <h2>{{.Site.About.Title}}</h2>
  <p class="lead">{{.Site.About.Body}}</p>
  <ul class="highlights">{{range .Site.About.Highlights}}<li>{{.}}</li>{{end}}</ul>
  <div class="pillars">
    {{range .Site.About.Pillars}}<div class="pillar"><h3>{{.Title}}</h3><p>{{.Body}}</p></div>
    {{end}}
  </div>
  <a class="button" href="/about" data-link>Meet the team</a>
</section>
<section id="products" class="section products">
  <div class="eco-header"><h2>{{.Site.Products.Title}}</h2><span class="eco-underline"></span><p>{{.Site.Products.Subtitle}}</p></div>
  {{range $i, $p := .Site.Products.Items}}
  <div class="eco-block eco-block-{{inc $i}}">
    <div class="eco-content"><h3>{{$p.Name}}</h3><p>{{$p.Summary}}</p><a href="{{$p.Path}}" data-link>Explore {{$p.Name}} &rarr;</a></div>
    <div class="eco-visual"><img src="{{$p.Image}}" alt="{{$p.Name}}" loading="lazy"></div>
  </div>
  {{end}}
</section>
{{template "contact" .Site}}
{{end}}

{{define "contact"}}
<section id="contact" class="section contact reveal">
  <h2>Get in Touch</h2>
  <p class="lead">{{.Contact.Subtitle}}</p>
  <div class="contact-grid">
    <a class="contact-card" href="mailto:{{.Contact.Email}}"><h3>Email Us</h3><p>{{.Contact.Email}}</p></a>
    <a class="contact-card" href="tel:{{phone .Contact.Phone}}"><h3>Call Us</h3><p>{{.Contact.Hours}}</p><p>{{.Contact.Phone}}</p></a>
    <div class="contact-card"><h3>Visit Us</h3><p>{{.Contact.Address}}</p></div>
  </div>
  <p class="closing">{{.Contact.Closing}}</p>
</section>
{{end}}

{{define "detail"}}
<div class="detail" data-page="{{.Page.ID}}">
  <div class="bg-orb"></div><div class="bg-orb"></div>
  <header class="detail-hero">
    <a href="/" class="hero-badge" data-link>&larr; {{.Page.Badge}}</a>
    <h1 class="hero-title">{{.Page.Title}}</h1>
    <p class="hero-description">&ldquo;{{.Page.Quote}}&rdquo;</p>
  </header>
  <nav class="tab-nav-sticky" id="tab-nav" data-active="{{.Active}}">
    {{range .Tabs}}<a href="{{.Href}}" data-tab="{{.ID}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a>
    {{end}}
  </nav>
  <div id="tab-panel" class="active-tab-content">{{.Panel}}</div>
</div>
{{end}}

{{define "panel-markdown"}}<article class="prose">{{.}}</article>{{end}}

{{define "panel-team"}}
<p class="lead">{{.Intro}}</p>
<div class="team-grid">
  {{range .Members}}
  <div class="reveal-card" id="card-{{.ID}}" data-card="{{.ID}}" data-face="primary" tabindex="0">
    <img src="{{.Image}}" alt="{{.Name}}" loading="lazy">
    <div class="face-primary"><h3>{{.Name}}</h3><p>{{.Designation}}</p></div>
    <div class="face-disclosure"><h3>{{.Name}}</h3><p class="qualification">{{.Qualification}}</p><p>{{.Bio}}</p></div>
  </div>
  {{end}}
</div>
{{end}}

{{define "not-found"}}
<section class="section not-found">
  <h1>Page not found</h1>
  <p>Nothing lives at <code>{{.}}</code>.</p>
  <a class="button" href="/" data-link>Back to Home</a>
</section>
{{end}}
`

// cssContent is the site stylesheet.
const cssContent = `:root {
  --brand: #EA9010;
  --brand-soft: rgba(234, 144, 16, 0.15);
  --bg: #ffffff;
  --bg-alt: #fff8ee;
  --heading: #111111;
  --body: #4a4a4a;
  --border: #ececec;
  --nav-height: 80px;
}

html.dark, [data-theme="dark"] {
  --bg: #0A0A0A;
  --bg-alt: #131313;
  --heading: #ffffff;
  --body: #b5b5b5;
  --border: #262626;
}

* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; background: var(--bg); color: var(--body); transition: background .3s, color .3s; }
h1, h2, h3 { color: var(--heading); }
a { color: inherit; }
.accent { color: var(--brand); }

/* navigation */
.navbar { position: fixed; top: 0; width: 100%; z-index: 40; backdrop-filter: blur(12px); background: color-mix(in srgb, var(--bg) 85%, transparent); border-bottom: 1px solid var(--border); }
.nav-inner { max-width: 1200px; margin: 0 auto; padding: 0 24px; height: var(--nav-height); display: flex; align-items: center; gap: 24px; }
.brand { font-size: 1.5rem; font-weight: 700; text-decoration: none; color: var(--heading); margin-right: auto; }
.nav-links { display: flex; gap: 32px; }
.nav-links a { text-decoration: none; text-transform: uppercase; letter-spacing: .15em; font-size: .85rem; }
.nav-links a:hover { color: var(--brand); }
.theme-form { margin: 0; }
.theme-toggle, .menu-toggle { border: 0; background: var(--bg-alt); color: var(--heading); border-radius: 999px; padding: 8px 12px; cursor: pointer; font-size: 1.1rem; }
[data-theme="light"] .moon, [data-theme="dark"] .sun { display: none; }
.menu-toggle { display: none; }

@media (max-width: 768px) {
  .menu-toggle { display: inline-block; }
  .nav-links { display: none; position: absolute; top: var(--nav-height); left: 0; width: 100%; flex-direction: column; gap: 16px; padding: 24px; background: var(--bg); border-top: 1px solid var(--border); }
  .nav-links[data-open="true"] { display: flex; }
}

main { padding-top: var(--nav-height); }
.section { max-width: 1200px; margin: 0 auto; padding: 96px 24px; }
.lead { font-size: 1.15rem; line-height: 1.7; }
.eyebrow { text-transform: uppercase; letter-spacing: .2em; color: var(--brand); font-size: .8rem; }
.button { display: inline-block; margin-top: 24px; padding: 12px 24px; border-radius: 999px; background: var(--brand); color: #fff; text-decoration: none; }

/* loading overlay */
.loading { position: fixed; inset: 0; z-index: 100; display: flex; flex-direction: column; align-items: center; justify-content: center; background: #0A0A0A; color: #fff; overflow: hidden; }
.loading-image { position: absolute; inset: 0; background: radial-gradient(circle at center, #2a1a05, #0A0A0A 70%); }
.loading-glow { position: absolute; width: 480px; height: 480px; border-radius: 50%; background: var(--brand-soft); filter: blur(80px); }
.loading-title { position: relative; font-size: clamp(3rem, 10vw, 7rem); color: #fff; margin: 0; }
.loading-subtitle, .loading-tagline { position: relative; margin: 8px 0; }
.loading-progress { position: relative; width: 240px; height: 3px; background: rgba(255,255,255,.15); margin-top: 32px; }
.loading-bar { height: 100%; background: var(--brand); transform-origin: left center; }
.loading-curtain { position: absolute; inset: 0; background: var(--bg); transform: translateY(100%); }

/* hero */
.hero { position: relative; min-height: calc(100vh - var(--nav-height)); display: flex; align-items: center; justify-content: center; text-align: center; overflow: hidden; background: linear-gradient(135deg, #fff7ed, var(--bg)); }
html.dark .hero { background: linear-gradient(135deg, #0A0A0A, #0F0F0F); }
.hero-bg { position: absolute; inset: 0; background: radial-gradient(circle, rgba(234,144,16,.08) 1px, transparent 1px); background-size: 50px 50px; }
.hero-orbs { position: absolute; inset: 0; pointer-events: none; }
.hero-circle { position: absolute; width: 160px; height: 160px; border-radius: 50%; border: 1px solid var(--brand-soft); top: 80px; right: 128px; }
.hero-circle + .hero-circle { width: 128px; height: 128px; top: auto; right: auto; bottom: 128px; left: 80px; }
.hero-dot { position: absolute; width: 12px; height: 12px; border-radius: 50%; background: var(--brand); opacity: .4; top: 25%; left: 25%; }
.hero-dot + .hero-dot { top: 66%; left: 33%; }
.hero-content { position: relative; transition: opacity .6s, transform .6s; }
.hero[data-visible="false"] .hero-content { opacity: 0; transform: translateY(50px); }
.hero-tag { text-transform: uppercase; letter-spacing: .3em; font-size: 1rem; }
.hero-title { font-size: clamp(3.5rem, 12vw, 10rem); line-height: 1.2; margin: 0; color: var(--brand); }
.hero-title + .hero-title { color: var(--heading); }

/* about + products */
.highlights { display: flex; flex-wrap: wrap; gap: 12px; list-style: none; padding: 0; }
.highlights li { padding: 8px 16px; border-radius: 999px; background: var(--bg-alt); }
.pillars { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 24px; margin-top: 32px; }
.pillar { padding: 24px; border-radius: 16px; border: 1px solid var(--border); }
.eco-header { text-align: center; }
.eco-underline { display: block; width: 96px; height: 3px; margin: 12px auto; background: var(--brand); }
.eco-block { display: grid; grid-template-columns: 1fr 1fr; gap: 48px; align-items: center; margin-top: 80px; }
.eco-block:nth-of-type(odd) .eco-visual { order: -1; }
.eco-visual img { width: 100%; border-radius: 24px; }

/* contact */
.contact-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 24px; }
.contact-card { display: block; padding: 24px; border-radius: 16px; border: 1px solid var(--border); text-decoration: none; }
.contact-card:hover { border-color: var(--brand); }

/* detail pages */
.detail { position: relative; overflow: hidden; }
.bg-orb { position: absolute; width: 60vw; height: 60vw; border-radius: 50%; background: var(--brand-soft); filter: blur(120px); top: 5%; right: -5%; pointer-events: none; }
.bg-orb + .bg-orb { top: auto; right: auto; bottom: 5%; left: -5%; }
.detail-hero { position: relative; text-align: center; padding: 120px 24px 64px; }
.hero-badge { display: inline-block; padding: 8px 24px; border-radius: 999px; border: 1px solid var(--border); text-decoration: none; text-transform: uppercase; letter-spacing: .3em; font-size: .7rem; }
.hero-description { font-size: 1.4rem; font-style: italic; }
.tab-nav-sticky { position: sticky; top: var(--nav-height); z-index: 10; display: flex; justify-content: center; gap: 32px; padding: 16px; background: var(--bg); border-bottom: 1px solid var(--border); }
.tab-nav-sticky a { text-decoration: none; text-transform: uppercase; letter-spacing: .15em; font-size: .8rem; opacity: .5; }
.tab-nav-sticky a[aria-current="page"] { opacity: 1; color: var(--brand); }
.active-tab-content { position: relative; max-width: 1000px; margin: 0 auto; padding: 64px 24px; }
.prose table { width: 100%; border-collapse: collapse; }
.prose th, .prose td { padding: 12px; border-bottom: 1px solid var(--border); text-align: left; }

/* reveal cards */
.team-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 24px; }
.reveal-card { position: relative; min-height: 420px; border-radius: 32px; overflow: hidden; cursor: pointer; color: #fff; }
.reveal-card img { position: absolute; inset: 0; width: 100%; height: 100%; object-fit: cover; transition: filter .7s, transform .7s; }
.reveal-card h3 { color: #fff; }
.face-primary, .face-disclosure { position: absolute; inset-inline: 0; padding: 24px; transition: opacity .5s, transform .5s; }
.face-primary { bottom: 0; background: linear-gradient(to top, rgba(0,0,0,.9), transparent); }
.face-disclosure { inset: 0; background: rgba(0,0,0,.6); backdrop-filter: blur(24px); opacity: 0; transform: translateY(100%); overflow-y: auto; }
.reveal-card[data-face="disclosure"] img { filter: blur(8px) brightness(.4); transform: scale(1.1); }
.reveal-card[data-face="disclosure"] .face-primary { opacity: 0; transform: translateY(16px); }
.reveal-card[data-face="disclosure"] .face-disclosure { opacity: 1; transform: none; }
.qualification { color: var(--brand); font-size: .85rem; }
`

// jsContent is the live client. It forwards UI events over the websocket
// and applies the command batches the server sends back, in order.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var live = html.getAttribute("data-live") === "on";
  var socket = null;
  var scrollTimer = null;
  var listeners = {};

  function send(ev) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(ev));
      return true;
    }
    return false;
  }

  function els(target) {
    return target === "html" ? [html] : Array.prototype.slice.call(document.querySelectorAll(target));
  }

  // ===== Timelines =====
  function place(pos, prev, end) {
    if (!pos) return end;
    if (pos === "<") return prev.start;
    if (pos.indexOf("-=") === 0) return end - parseFloat(pos.slice(2));
    if (pos.indexOf("+=") === 0) return end + parseFloat(pos.slice(2));
    return parseFloat(pos);
  }

  function resolve(tl) {
    var prev = { start: 0, end: 0 }, end = 0, starts = [], markers = {};
    var byIndex = {};
    (tl.markers || []).forEach(function(m) { (byIndex[m.index] = byIndex[m.index] || []).push(m); });
    function mark(i) {
      (byIndex[i] || []).forEach(function(m) { markers[m.name] = Math.max(0, place(m.position, prev, end)); });
    }
    tl.steps.forEach(function(s, i) {
      mark(i);
      var start = Math.max(0, place(s.position, prev, end));
      var busy = (s.delay || 0) + s.duration * ((s.repeat > 0 ? s.repeat : 0) + 1);
      starts.push(start);
      prev = { start: start, end: start + busy };
      end = Math.max(end, prev.end);
    });
    mark(tl.steps.length);
    return { starts: starts, markers: markers };
  }

  function easing(name) {
    if (!name) return "ease-out";
    if (name.indexOf("back") === 0) return "cubic-bezier(0.34, 1.56, 0.64, 1)";
    if (name.indexOf("sine") === 0) return "ease-in-out";
    if (name.indexOf("inOut") > 0) return "ease-in-out";
    return "ease-out";
  }

  function value(v) {
    var m = /^random\((-?[\d.]+),\s*(-?[\d.]+)\)$/.exec(v);
    if (!m) return v;
    var lo = parseFloat(m[1]), hi = parseFloat(m[2]);
    return lo + Math.random() * (hi - lo);
  }

  function frame(props) {
    var f = {}, t = [];
    Object.keys(props || {}).forEach(function(k) {
      var v = value(props[k]);
      if (k === "x") t.push("translateX(" + v + "px)");
      else if (k === "y") t.push("translateY(" + v + "px)");
      else if (k === "yPercent") t.push("translateY(" + v + "%)");
      else if (k === "scale") t.push("scale(" + v + ")");
      else if (k === "scaleX") t.push("scaleX(" + v + ")");
      else f[k] = v;
    });
    if (t.length) f.transform = t.join(" ");
    return f;
  }

  // "top 85%" fires once the element's top crosses 85% of the viewport
  // height, i.e. the bottom 15% of the viewport is excluded.
  function margin(start) {
    var m = /^top\s+(\d+(?:\.\d+)?)%$/.exec(start || "");
    if (!m) return "0px";
    return "0px 0px -" + (100 - parseFloat(m[1])) + "% 0px";
  }

  function play(tl) {
    var r = resolve(tl);
    var run = function() {
      tl.steps.forEach(function(s, i) {
        var root = tl.scope ? document.querySelector(tl.scope) : document;
        if (!root || !s.target) return;
        var nodes = root.matches && root.matches(s.target) ? [root] : root.querySelectorAll(s.target);
        Array.prototype.forEach.call(nodes, function(el, n) {
          if (!el.animate) return;
          el.animate([frame(s.from), frame(s.to)], {
            duration: s.duration * 1000,
            delay: (r.starts[i] + (s.delay || 0) + (s.stagger || 0) * n) * 1000,
            easing: easing(s.ease),
            iterations: s.repeat < 0 ? Infinity : (s.repeat || 0) + 1,
            direction: s.yoyo ? "alternate" : "normal",
            fill: "both"
          });
        });
      });
      Object.keys(r.markers).forEach(function(name) {
        setTimeout(function() { send({ type: "loading." + name }); }, r.markers[name] * 1000);
      });
    };
    if (tl.trigger === "scroll" && window.IntersectionObserver) {
      var first = document.querySelector(tl.scope || (tl.steps[0] && tl.steps[0].target));
      if (!first) return;
      var io = new IntersectionObserver(function(entries) {
        if (entries.some(function(e) { return e.isIntersecting; })) { io.disconnect(); run(); }
      }, { rootMargin: margin(tl.start) });
      io.observe(first);
      return;
    }
    run();
  }

  // ===== Listeners =====
  function parallax(e) {
    var cx = window.innerWidth / 2, cy = window.innerHeight / 2;
    document.querySelectorAll("[data-parallax]").forEach(function(el) {
      var k = parseFloat(el.getAttribute("data-parallax")) || 0.03;
      el.style.transform = "translate(" + (e.clientX - cx) * k + "px," + (e.clientY - cy) * k + "px)";
    });
  }
  var handlers = { pointermove: parallax };

  // ===== Commands =====
  function apply(c) {
    switch (c.op) {
    case "attr":
      els(c.target).forEach(function(el) { el.setAttribute(c.name, c.value || ""); });
      if (c.target === "#tab-nav") {
        document.querySelectorAll("#tab-nav [data-tab]").forEach(function(a) {
          if (a.getAttribute("data-tab") === c.value) a.setAttribute("aria-current", "page");
          else a.removeAttribute("aria-current");
        });
      }
      break;
    case "swap":
      els(c.target).forEach(function(el) { el.innerHTML = c.html || ""; });
      break;
    case "navigate":
      history.pushState({}, "", c.path);
      if (c.title) document.title = c.title;
      break;
    case "reload":
      window.location.assign(c.path);
      break;
    case "scroll":
      window.scrollTo(c.x || 0, c.y || 0);
      break;
    case "scrollTo":
      var el = document.getElementById(c.target);
      if (el) el.scrollIntoView({ behavior: c.smooth ? "smooth" : "auto" });
      break;
    case "animate":
      if (c.timeline) play(c.timeline);
      break;
    case "remove":
      els(c.target).forEach(function(el) { el.remove(); });
      break;
    case "listen":
      if (handlers[c.name] && !listeners[c.name]) {
        listeners[c.name] = handlers[c.name];
        window.addEventListener(c.name, listeners[c.name]);
      }
      break;
    case "unlisten":
      if (listeners[c.name]) {
        window.removeEventListener(c.name, listeners[c.name]);
        delete listeners[c.name];
      }
      break;
    }
  }

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    socket = new WebSocket(proto + location.host + "/ws/live");
    socket.onopen = function() {
      var tab = new URLSearchParams(location.search).get("tab") || "";
      send({ type: "mount", path: location.pathname + location.hash, tab: tab });
    };
    socket.onmessage = function(msg) {
      var data;
      try { data = JSON.parse(msg.data); } catch (e) { return; }
      if (data.type === "commands") data.commands.forEach(apply);
      else if (data.type === "error" && window.console) console.warn("live:", data.message);
    };
    socket.onclose = function() { socket = null; };
  }

  // ===== Offline theme =====
  function setTheme(mode) {
    html.setAttribute("data-theme", mode);
    html.className = mode;
  }

  function savedTheme() {
    try { return localStorage.getItem("theme"); } catch (e) { return null; }
  }

  function saveTheme(mode) {
    try { localStorage.setItem("theme", mode); } catch (e) {}
  }

  // Without a live server the page degrades to plain links and forms, and
  // the theme is kept in the browser.
  function offline() {
    var overlay = document.getElementById("loading");
    if (overlay) overlay.remove();
    var hero = document.getElementById("hero");
    if (hero) hero.setAttribute("data-visible", "true");
    var stored = savedTheme();
    if (stored === "light" || stored === "dark") setTheme(stored);
  }

  // ===== Event forwarding =====
  document.addEventListener("click", function(e) {
    var a = e.target.closest("a, button");
    if (!a) {
      var card = e.target.closest("[data-card]");
      if (card && send({ type: "card.click", card: card.getAttribute("data-card") })) return;
      return;
    }
    if (a.id === "menu-toggle") {
      if (!send({ type: "menu.toggle" })) {
        var m = document.getElementById("nav-menu");
        m.setAttribute("data-open", m.getAttribute("data-open") === "true" ? "false" : "true");
      }
      return;
    }
    if (a.hasAttribute("data-nav")) {
      if (send({ type: "nav.select", item: a.getAttribute("data-nav") })) e.preventDefault();
      return;
    }
    if (a.hasAttribute("data-tab")) {
      if (send({ type: "tab.select", tab: a.getAttribute("data-tab") })) e.preventDefault();
      return;
    }
    if (a.hasAttribute("data-link")) {
      if (send({ type: "navigate", path: a.getAttribute("href") })) e.preventDefault();
    }
  });

  ["mouseenter", "mouseleave"].forEach(function(kind) {
    document.addEventListener(kind, function(e) {
      var card = e.target.closest && e.target.closest("[data-card]");
      if (card === e.target) send({ type: kind === "mouseenter" ? "card.enter" : "card.leave", card: card.getAttribute("data-card") });
    }, true);
  });

  var themeForm = document.getElementById("theme-form");
  if (themeForm) {
    themeForm.addEventListener("submit", function(e) {
      if (send({ type: "theme.toggle" })) { e.preventDefault(); return; }
      if (live) return;
      e.preventDefault();
      var next = html.getAttribute("data-theme") === "dark" ? "light" : "dark";
      setTheme(next);
      saveTheme(next);
    });
  }

  window.addEventListener("popstate", function() {
    send({ type: "navigate", path: location.pathname + location.hash });
  });

  window.addEventListener("scroll", function() {
    clearTimeout(scrollTimer);
    scrollTimer = setTimeout(function() {
      send({ type: "scroll", x: Math.round(window.scrollX), y: Math.round(window.scrollY) });
    }, 150);
  }, { passive: true });

  if (live && window.WebSocket) connect(); else offline();
})();
`
