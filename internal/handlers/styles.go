// SPDX-License-Identifier: MIT
package handlers

const (
	// Layout tokens; colors come from /theme.css
	NavbarHeight    = "64px"
	ContentMaxWidth = "1100px"
	RadiusCard      = "16px"
	TransitionBase  = "300ms ease"
)

// GetSiteCSS returns the layout stylesheet shared by every page. It only
// references the color variables generated by the themes package.
func GetSiteCSS() string {
	return `
:root {
	--navbar-height: ` + NavbarHeight + `;
	--content-max: ` + ContentMaxWidth + `;
	--radius-card: ` + RadiusCard + `;
	--transition: ` + TransitionBase + `;
	--font-body: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
	--font-display: "Playfair Display", Georgia, serif;
}

* { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body { margin: 0; font-family: var(--font-body); line-height: 1.6; }
main { min-height: 70vh; }
h1, h2, h3, h4 { font-family: var(--font-display); margin: 0 0 0.5em; }
a { text-decoration: none; transition: color var(--transition); }
[hidden] { display: none !important; }

/* Navbar */
.navbar { position: fixed; inset: 0 0 auto 0; z-index: 50; transition: background-color var(--transition), box-shadow var(--transition); }
.navbar.scrolled { background-color: color-mix(in srgb, var(--color-bg) 90%, transparent); backdrop-filter: blur(8px); box-shadow: 0 2px 12px rgba(0, 0, 0, 0.25); }
.navbar-inner { max-width: var(--content-max); margin: 0 auto; height: var(--navbar-height); display: flex; align-items: center; justify-content: space-between; padding: 0 1.5rem; }
.brand { font-family: var(--font-display); font-size: 1.5rem; font-weight: 700; color: var(--color-accent); }
.nav-links { display: flex; gap: 2rem; }
.nav-links a { position: relative; color: var(--color-text); }
.nav-links a::after { content: ""; position: absolute; left: 0; bottom: -4px; width: 0; height: 2px; background: var(--color-accent); transition: width var(--transition); }
.nav-links a:hover::after, .nav-links a.active::after { width: 100%; }
.nav-links a.active { color: var(--color-accent); }
.menu-toggle-form { display: none; margin: 0; }
.menu-toggle { background: none; border: 0; color: var(--color-text); cursor: pointer; }
.mobile-menu { display: flex; flex-direction: column; gap: 1rem; padding: 1rem 1.5rem; background: var(--color-surface); }
.mobile-menu a { color: var(--color-text); }
.mobile-menu a.active { color: var(--color-accent); }

@media (max-width: 767px) {
	.nav-links { display: none; }
	.menu-toggle-form { display: block; }
}
@media (min-width: 768px) {
	.mobile-menu { display: none !important; }
}

/* Hero */
.hero { position: relative; min-height: 100vh; display: flex; align-items: center; justify-content: center; background-size: cover; background-position: center; text-align: center; }
.hero-overlay { position: absolute; inset: 0; background: rgba(0, 0, 0, 0.6); }
.hero-content { position: relative; padding: 0 1.5rem; }
.hero-title { font-size: clamp(2.5rem, 6vw, 4.5rem); color: #fff; }
.hero-subtitle { font-size: 1.25rem; color: #e5e5e5; margin-bottom: 2rem; }
.btn { display: inline-block; padding: 0.75rem 2rem; border-radius: 999px; font-weight: 600; transition: transform var(--transition), box-shadow var(--transition); }
.btn:hover { transform: scale(1.05); box-shadow: 0 8px 24px var(--color-accent-soft); }

/* Sections */
.section-title { text-align: center; font-size: 2.25rem; color: var(--color-accent); }
.section-intro { text-align: center; color: var(--color-text-muted); max-width: 42rem; margin: 0 auto 3rem; }
.stats-block, .skills-block, .timeline-block, .text-block, .markdown-block, .contact { max-width: var(--content-max); margin: 0 auto; padding: 5rem 1.5rem 2rem; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 2rem; }
.stat-card { background: var(--color-surface); border: 1px solid var(--color-border); border-radius: var(--radius-card); padding: 2rem; text-align: center; transition: transform var(--transition), border-color var(--transition); }
.stat-card:hover { transform: translateY(-5px); border-color: var(--color-accent); }
.stat-value { font-size: 2rem; color: var(--color-accent); }
.stat-label { color: var(--color-text-muted); }
.skills-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1rem; }
.skill { display: flex; gap: 0.75rem; align-items: center; padding: 1rem; background: var(--color-surface); border-radius: 12px; }
.timeline { list-style: none; padding: 0; display: grid; gap: 1.5rem; }
.milestone { display: flex; gap: 1rem; }
.milestone-head { display: flex; justify-content: space-between; gap: 1rem; }
.milestone-year { color: var(--color-accent); white-space: nowrap; }

/* Contact */
.contact-card { max-width: 40rem; margin: 0 auto; background: var(--color-surface); border-radius: var(--radius-card); padding: 2rem; }
.contact fieldset { border: 0; padding: 0; margin: 0; display: grid; gap: 1.25rem; }
.field label { display: block; margin-bottom: 0.5rem; font-weight: 500; }
.field input, .field textarea { width: 100%; padding: 0.75rem 1rem; border-radius: 8px; border: 1px solid var(--color-border); background: var(--color-bg); color: var(--color-text); font: inherit; }
.field input:focus, .field textarea:focus { outline: 2px solid var(--color-accent); }
.field-error { font-size: 0.875rem; margin: 0.25rem 0 0; }
.submit { width: 100%; padding: 0.9rem; border: 0; border-radius: 8px; font-weight: 600; cursor: pointer; }
fieldset[disabled] .submit { opacity: 0.7; cursor: progress; }
.contact-thanks { text-align: center; }

/* Footer */
.site-footer { background: var(--color-surface); padding: 4rem 1.5rem 2rem; margin-top: 4rem; }
.footer-grid { max-width: var(--content-max); margin: 0 auto; display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 3rem; }
.footer-links ul { list-style: none; padding: 0; }
.footer-links a { color: var(--color-text-muted); }
.footer-links a:hover { color: var(--color-accent); }
.socials { display: flex; gap: 1rem; }
.social { color: var(--color-text-muted); }
.social:hover { color: var(--brand); }
.newsletter-form { display: flex; }
.newsletter-form input { flex: 1; padding: 0.6rem 1rem; border: 1px solid var(--color-border); border-radius: 8px 0 0 8px; background: var(--color-bg); color: var(--color-text); }
.newsletter-form button { border: 0; border-radius: 0 8px 8px 0; padding: 0 1rem; cursor: pointer; }
.footer-divider { max-width: var(--content-max); margin: 2rem auto; height: 1px; background: var(--color-border); }
.footer-bottom { max-width: var(--content-max); margin: 0 auto; display: flex; justify-content: space-between; flex-wrap: wrap; color: var(--color-text-muted); font-size: 0.875rem; }
.heart { color: var(--color-error); }
.scroll-top { position: fixed; right: 2rem; bottom: 2rem; width: 3rem; height: 3rem; border-radius: 50%; display: flex; align-items: center; justify-content: center; background: var(--color-accent); color: var(--color-accent-contrast); opacity: 0; pointer-events: none; transform: scale(0.8); transition: opacity var(--transition), transform var(--transition); }
.scroll-top.visible { opacity: 1; pointer-events: auto; transform: scale(1); }

/* 404 */
.not-found { min-height: 70vh; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 6rem 1.5rem; }
.not-found h1 { font-size: 6rem; color: var(--color-accent); }
.not-found .links { display: flex; gap: 1.5rem; }

/* Entrance animation, decorative only */
.reveal { animation: reveal 0.8s ease both; }
@keyframes reveal { from { opacity: 0; transform: translateY(20px); } to { opacity: 1; transform: none; } }
@media (prefers-reduced-motion: reduce) { .reveal { animation: none; } html { scroll-behavior: auto; } }

/* Icons are drawn with masks so they follow currentColor */
.icon { display: inline-block; width: 1.25em; height: 1.25em; background: currentColor; -webkit-mask: var(--icon) center / contain no-repeat; mask: var(--icon) center / contain no-repeat; vertical-align: middle; }
`
}
