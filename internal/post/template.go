package post

// pageTemplate is the full standalone post page. Styling is inlined so each
// post renders correctly when served as a bare file, with ${...} slots filled
// by Render.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>${title} | TacRaven Solutions</title>
    <meta name="description" content="${meta_description}">
    <link rel="canonical" href="${site_url}/blog/posts/${year}/${month}/${slug}.html">

    <meta property="og:type" content="article">
    <meta property="og:title" content="${title}">
    <meta property="og:description" content="${meta_description}">
    <meta property="og:url" content="${site_url}/blog/posts/${year}/${month}/${slug}.html">
    <meta property="article:published_time" content="${iso_date}">

    <style>
        @import url('https://fonts.googleapis.com/css2?family=Oswald:wght@400;500;600;700&family=Inter:wght@400;500;600&display=swap');

        :root {
            --gold:#D4A32A;--gold-light:#E8C45A;--gold-dim:rgba(212,163,42,0.15);
            --bg-darkest:#0A0A0A;--bg-dark:#0F0F0F;--bg-card:#141414;--bg-elevated:#1A1A1A;
            --text-primary:#FFF;--text-secondary:#B0B0B0;--text-muted:#666;
            --border-dark:#1F1F1F;--border-light:#2A2A2A;
            --red:#E74C3C;--green:#2ECC71;--blue:#3498DB;--orange:#F39C12;--purple:#9B59B6;
            --font-display:'Oswald',sans-serif;
            --font-body:'Inter',-apple-system,sans-serif;
        }

        *,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
        html{font-size:17px;scroll-behavior:smooth}
        body{font-family:var(--font-body);background:var(--bg-darkest);color:var(--text-primary);line-height:1.8;min-height:100vh}
        a{color:var(--gold);text-decoration:none;transition:color 0.2s}
        a:hover{color:var(--gold-light)}

        /* Header */
        .header{background:var(--bg-dark);border-bottom:1px solid var(--border-dark);height:70px;position:sticky;top:0;z-index:1000}
        .header-inner{max-width:1400px;margin:0 auto;padding:0 2rem;height:100%;display:flex;justify-content:space-between;align-items:center}
        .logo{font-family:var(--font-display);font-size:1.5rem;font-weight:600;letter-spacing:0.05em;color:var(--text-primary)}
        .logo span{color:var(--gold)}
        .nav{display:flex;align-items:center;gap:2rem}
        .nav a{font-size:0.9rem;font-weight:500;color:var(--text-secondary)}
        .nav a:hover,.nav a.active{color:var(--text-primary)}
        .nav-cta{background:var(--gold);color:var(--bg-darkest)!important;padding:0.6rem 1.25rem;border-radius:4px;font-weight:600;text-transform:uppercase;font-size:0.8rem;letter-spacing:0.05em}

        /* Hero Banner */
        .hero-banner{position:relative;background:var(--bg-dark);padding:3rem 2rem;overflow:hidden}
        .hero-banner::before{content:'';position:absolute;inset:0;background-image:linear-gradient(rgba(212,163,42,0.03) 1px,transparent 1px),linear-gradient(90deg,rgba(212,163,42,0.03) 1px,transparent 1px);background-size:50px 50px}
        .hero-inner{max-width:1100px;margin:0 auto;position:relative;z-index:1;display:grid;grid-template-columns:1fr auto;gap:3rem;align-items:center}
        .hero-content{max-width:700px}
        .hero-badge-img{width:240px;height:240px;object-fit:contain;filter:drop-shadow(0 0 30px rgba(212,163,42,0.4));animation:float 6s ease-in-out infinite;border-radius:50%;-webkit-mask-image:radial-gradient(circle,black 60%,transparent 100%);mask-image:radial-gradient(circle,black 60%,transparent 100%)}
        @keyframes float{0%,100%{transform:translateY(0)}50%{transform:translateY(-10px)}}

        .back-link{display:inline-flex;align-items:center;gap:0.5rem;font-size:0.85rem;font-weight:500;color:var(--text-muted);margin-bottom:1.5rem}
        .back-link:hover{color:var(--gold)}
        .back-link svg{width:16px;height:16px}

        .hero-meta{display:flex;align-items:center;gap:1rem;margin-bottom:1rem;flex-wrap:wrap}
        .hero-category{font-family:var(--font-display);font-size:0.7rem;font-weight:600;text-transform:uppercase;letter-spacing:0.1em;color:var(--bg-darkest);padding:0.3rem 0.75rem;border-radius:3px}
        .hero-date{font-size:0.85rem;color:var(--text-muted)}
        .hero-read{font-size:0.85rem;color:var(--text-muted)}

        .hero-title{font-family:var(--font-display);font-size:3.5rem;font-weight:700;text-transform:uppercase;letter-spacing:0.03em;line-height:1.1;margin-bottom:1.25rem}
        .hero-title span{color:var(--gold)}
        .hero-subtitle{font-size:1.2rem;color:var(--text-secondary);line-height:1.6;max-width:700px}

        /* Stats Strip */
        .stats-strip{background:var(--bg-card);border-top:1px solid var(--border-dark);border-bottom:1px solid var(--border-dark);padding:1.5rem 2rem}
        .stats-inner{max-width:900px;margin:0 auto;display:grid;grid-template-columns:repeat(4,1fr);gap:2rem}
        .stat{text-align:center;position:relative}
        .stat:not(:last-child)::after{content:'';position:absolute;right:0;top:50%;transform:translateY(-50%);width:1px;height:60%;background:var(--border-dark)}
        .stat-value{font-family:var(--font-display);font-size:2rem;font-weight:700;color:var(--gold);line-height:1}
        .stat-label{font-size:0.7rem;color:var(--text-muted);text-transform:uppercase;letter-spacing:0.05em;margin-top:0.25rem}

        /* Article Content */
        .article-wrap{max-width:900px;margin:0 auto;padding:3rem 2rem}
        .content{font-size:1.05rem;line-height:1.9}
        .content p{margin-bottom:1.5rem;color:var(--text-secondary)}
        .content strong{color:var(--text-primary);font-weight:600}
        .content em{color:var(--text-secondary)}

        .content h2{font-family:var(--font-display);font-size:1.75rem;font-weight:600;text-transform:uppercase;letter-spacing:0.05em;color:var(--text-primary);margin-top:3rem;margin-bottom:1.5rem;display:flex;align-items:center;gap:1rem}
        .content h2::before{content:'';width:4px;height:100%;min-height:28px;background:var(--gold);border-radius:2px}

        .content h3{font-family:var(--font-display);font-size:1.1rem;font-weight:600;color:var(--gold);margin-top:2rem;margin-bottom:0.75rem;padding-left:1rem;border-left:2px solid var(--gold-dim)}

        .content ul,.content ol{margin-bottom:1.5rem;padding-left:0;list-style:none}
        .content li{margin-bottom:0.75rem;padding-left:1.5rem;position:relative;color:var(--text-secondary)}
        .content li::before{content:'';position:absolute;left:0;top:0.6rem;width:6px;height:6px;background:var(--gold);border-radius:50%}
        .content a{text-decoration:underline;text-underline-offset:3px}

        /* Callout Boxes */
        .callout{background:var(--bg-card);border:1px solid var(--border-dark);border-radius:8px;padding:1.5rem;margin:2rem 0;position:relative;overflow:hidden}
        .callout::before{content:'';position:absolute;left:0;top:0;bottom:0;width:4px;background:var(--gold)}
        .callout-icon{width:40px;height:40px;background:var(--gold-dim);border-radius:8px;display:flex;align-items:center;justify-content:center;margin-bottom:1rem}
        .callout-icon svg{width:20px;height:20px;stroke:var(--gold);fill:none}
        .callout-title{font-family:var(--font-display);font-size:0.9rem;font-weight:600;text-transform:uppercase;letter-spacing:0.1em;color:var(--gold);margin-bottom:0.5rem}
        .callout p{margin:0;color:var(--text-secondary);font-size:0.95rem}

        .callout.success::before{background:var(--green)}
        .callout.success .callout-icon{background:rgba(46,204,113,0.15)}
        .callout.success .callout-icon svg{stroke:var(--green)}
        .callout.success .callout-title{color:var(--green)}

        /* Data Cards Grid */
        .card-grid{display:grid;grid-template-columns:repeat(2,1fr);gap:1rem;margin:2rem 0}
        .data-card{background:var(--bg-card);border:1px solid var(--border-dark);border-radius:8px;padding:1.25rem;transition:all 0.3s}
        .data-card:hover{border-color:var(--gold);transform:translateY(-2px)}
        .data-card h4{font-family:var(--font-display);font-size:0.95rem;font-weight:600;color:var(--text-primary);margin-bottom:0.5rem}
        .data-card .highlight{font-family:var(--font-display);font-size:1.25rem;font-weight:700;color:var(--gold);margin-bottom:0.5rem}
        .data-card p{font-size:0.85rem;color:var(--text-muted);margin:0;line-height:1.5}

        /* List Cards */
        .list-cards{margin:2rem 0}
        .list-card{display:flex;align-items:flex-start;gap:1rem;background:var(--bg-card);border:1px solid var(--border-dark);border-radius:8px;padding:1rem 1.25rem;margin-bottom:0.75rem;transition:border-color 0.3s}
        .list-card:hover{border-color:var(--gold)}
        .list-card-icon{width:36px;height:36px;background:var(--gold-dim);border-radius:6px;display:flex;align-items:center;justify-content:center;flex-shrink:0}
        .list-card-icon svg{width:18px;height:18px;stroke:var(--gold);fill:none}
        .list-card-info h5{font-family:var(--font-display);font-size:0.9rem;font-weight:600;color:var(--text-primary);margin-bottom:0.2rem}
        .list-card-info p{font-size:0.85rem;color:var(--text-muted);margin:0}

        /* Blockquote */
        blockquote{background:var(--bg-card);border:1px solid var(--border-dark);border-radius:8px;padding:1.5rem 1.5rem 1.5rem 2rem;margin:2rem 0;position:relative}
        blockquote::before{content:'"';position:absolute;left:1rem;top:0.5rem;font-family:var(--font-display);font-size:4rem;color:var(--gold-dim);line-height:1}
        blockquote p{margin:0;font-style:italic;color:var(--text-secondary);position:relative;z-index:1;padding-left:1rem}

        /* Article Footer */
        .article-footer{margin-top:3rem;padding-top:2rem;border-top:1px solid var(--border-dark)}
        .tags{display:flex;flex-wrap:wrap;gap:0.5rem;margin-bottom:2rem}
        .tag{font-size:0.75rem;font-weight:500;color:var(--text-muted);background:var(--bg-card);border:1px solid var(--border-dark);padding:0.4rem 0.75rem;border-radius:4px;transition:all 0.2s}
        .tag:hover{border-color:var(--gold);color:var(--gold)}

        .article-nav{display:flex;justify-content:space-between;align-items:center;flex-wrap:wrap;gap:1rem}
        .article-nav a{font-size:0.9rem;font-weight:500;color:var(--text-muted);display:flex;align-items:center;gap:0.5rem}
        .article-nav a:hover{color:var(--gold)}
        .article-nav svg{width:16px;height:16px}

        /* Author Box */
        .author-box{background:var(--bg-card);border:1px solid var(--border-dark);border-radius:8px;padding:1.5rem;margin-top:2rem;display:flex;gap:1.25rem;align-items:center}
        .author-avatar{width:60px;height:60px;background:linear-gradient(135deg,var(--gold),var(--gold-light));border-radius:8px;display:flex;align-items:center;justify-content:center;font-family:var(--font-display);font-weight:700;font-size:1.25rem;color:var(--bg-darkest);flex-shrink:0}
        .author-info h4{font-family:var(--font-display);font-size:1rem;font-weight:600;margin-bottom:0.25rem}
        .author-info p{font-size:0.85rem;color:var(--text-muted);margin:0;line-height:1.5}

        /* Footer */
        .footer{background:var(--bg-dark);border-top:1px solid var(--border-dark);padding:2rem;margin-top:3rem}
        .footer-inner{max-width:1400px;margin:0 auto;display:flex;justify-content:space-between;align-items:center;flex-wrap:wrap;gap:1rem}
        .footer-copy{font-size:0.85rem;color:var(--text-muted)}
        .footer-links{display:flex;gap:2rem}
        .footer-links a{font-size:0.85rem;color:var(--text-secondary)}

        /* Responsive */
        @media(max-width:900px){.hero-inner{grid-template-columns:1fr;text-align:center}.hero-badge-img{width:180px;height:180px;margin:0 auto}.hero-content{order:2}}
        @media(max-width:768px){.nav{display:none}.hero-title{font-size:2.25rem}.stats-inner{grid-template-columns:repeat(2,1fr);gap:1.5rem}.stat:not(:last-child)::after{display:none}.card-grid{grid-template-columns:1fr}.author-box{flex-direction:column;text-align:center}.footer-inner{flex-direction:column;text-align:center}}
    </style>
</head>
<body>
    <header class="header">
        <div class="header-inner">
            <a href="https://tacraven.com/" class="logo">TAC<span>RAVEN</span></a>
            <nav class="nav">
                <a href="https://tacraven.com/">Home</a>
                <a href="https://tacraven.com/learning-hub/">Learning Hub</a>
                <a href="https://tacraven.com/tools/">Tools</a>
                <a href="https://tacraven.com/threat-map/">Threat Map</a>
                <a href="https://tacraven.com/weekly-reports/">Weekly Reports</a>
                <a href="https://tacraven.com/about/">About</a>
                <a href="https://tacraven.com/pricing/">Pricing</a>
                <a href="/blog/" class="active">Careers</a>
                <a href="https://tacraven.com/contact/" class="nav-cta">Contact</a>
            </nav>
        </div>
    </header>

    <section class="hero-banner">
        <div class="hero-inner">
            <div class="hero-content">
                <a href="/blog/" class="back-link">
                    <svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M19 12H5M12 19l-7-7 7-7"/></svg>
                    Back to Careers Blog
                </a>

                <div class="hero-meta">
                    <span class="hero-category" style="background:${category_color}">${category}</span>
                    <span class="hero-date">${readable_date}</span>
                    <span class="hero-read">• ${read_time} min read</span>
                </div>

                <h1 class="hero-title">${title_html}</h1>
                <p class="hero-subtitle">${subtitle}</p>
            </div>

            <img src="data:image/jpeg;base64,${logo_base64}" alt="" class="hero-badge-img">
        </div>
    </section>

    <div class="stats-strip">
        <div class="stats-inner">
${stats_html}
        </div>
    </div>

    <article class="article-wrap">
        <div class="content">
${content}
        </div>

        <footer class="article-footer">
            <div class="tags">
${tags_html}
            </div>

            <nav class="article-nav">
                <a href="/blog/">
                    <svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M19 12H5M12 19l-7-7 7-7"/></svg>
                    Back to Blog
                </a>
            </nav>
        </footer>

        <aside class="author-box">
            <div class="author-avatar">TR</div>
            <div class="author-info">
                <h4>TacRaven Solutions</h4>
                <p>We build cybersecurity tools for organizations operating in disconnected, high-security environments. Learn more at <a href="https://tacraven.com">tacraven.com</a>.</p>
            </div>
        </aside>
    </article>

    <footer class="footer">
        <div class="footer-inner">
            <p class="footer-copy">© ${year} TacRaven Solutions LLC. All rights reserved.</p>
            <nav class="footer-links">
                <a href="https://tacraven.com/">Main Site</a>
                <a href="https://tacraven.com/privacy/">Privacy</a>
                <a href="https://tacraven.com/contact/">Contact</a>
            </nav>
        </div>
    </footer>
</body>
</html>`
