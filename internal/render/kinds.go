package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/draftforge/go-sitegen/internal/document"
)

func registerBuiltins(r *Registry) {
	r.Register(Entry{
		Kind:     KindHero,
		Renderer: RendererFunc(renderHero),
		Defaults: map[string]any{
			"headline":    "",
			"subheadline": "",
			"image":       "",
			"cta_label":   "",
			"cta_href":    "",
		},
	})
	r.Register(Entry{
		Kind:     KindText,
		Renderer: RendererFunc(renderText),
		Defaults: map[string]any{
			"heading": "",
			"body":    "",
		},
	})
	r.Register(Entry{
		Kind:     KindFeatures,
		Renderer: itemListRenderer("features", "What we offer"),
		Defaults: map[string]any{
			"heading": "",
			"items":   []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindServices,
		Renderer: itemListRenderer("services", "Our services"),
		Defaults: map[string]any{
			"heading": "",
			"items":   []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindProcess,
		Renderer: itemListRenderer("process", "How it works"),
		Defaults: map[string]any{
			"heading": "",
			"items":   []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindTestimonials,
		Renderer: RendererFunc(renderTestimonials),
		Defaults: map[string]any{
			"heading": "",
			"quotes":  []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindStats,
		Renderer: RendererFunc(renderStats),
		Defaults: map[string]any{
			"items": []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindFAQ,
		Renderer: RendererFunc(renderFAQ),
		Defaults: map[string]any{
			"heading": "",
			"items":   []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindPricing,
		Renderer: RendererFunc(renderPricing),
		Defaults: map[string]any{
			"heading": "",
			"tiers":   []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindProducts,
		Renderer: RendererFunc(renderProducts),
		Defaults: map[string]any{
			"heading": "",
			"items":   []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindCTA,
		Renderer: RendererFunc(renderCTA),
		Defaults: map[string]any{
			"heading":   "",
			"body":      "",
			"cta_label": "",
			"cta_href":  "",
		},
	})
	r.Register(Entry{
		Kind:     KindImage,
		Renderer: RendererFunc(renderImage),
		Defaults: map[string]any{
			"image":   "",
			"alt":     "",
			"caption": "",
		},
	})
	r.Register(Entry{
		Kind:     KindTeam,
		Renderer: RendererFunc(renderTeam),
		Defaults: map[string]any{
			"heading": "",
			"members": []any{},
		},
	})
	r.Register(Entry{
		Kind:     KindPortfolio,
		Renderer: RendererFunc(renderPortfolio),
		Defaults: map[string]any{
			"heading": "",
			"items":   []any{},
		},
	})
}

var markdown = goldmark.New()

func renderMarkdownBody(body string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		// Malformed markdown degrades to escaped plain text; the section
		// still renders.
		return "<p>" + html.EscapeString(body) + "</p>"
	}
	return buf.String()
}

func renderHero(section *document.Section, ctx Context) Output {
	data := section.Data
	headline := ctx.Text(stringField(data, "headline"), "Your headline goes here")
	subheadline := ctx.Text(stringField(data, "subheadline"), "Add a short supporting line")
	image := ctx.ImageURL(stringField(data, "image"))
	ctaLabel := stringField(data, "cta_label")
	ctaHref := stringField(data, "cta_href")

	var b strings.Builder
	b.WriteString(`<section class="section section--hero"`)
	if ctx.Site.Colors.Primary != "" {
		fmt.Fprintf(&b, ` style="--color-primary:%s"`, html.EscapeString(ctx.Site.Colors.Primary))
	}
	b.WriteString(">")
	if headline != "" {
		fmt.Fprintf(&b, "<h1>%s</h1>", html.EscapeString(headline))
	}
	if subheadline != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(subheadline))
	}
	if image != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="">`, html.EscapeString(image))
	}
	if ctaLabel != "" {
		href := ctaHref
		if href == "" {
			href = "#"
		}
		fmt.Fprintf(&b, `<a class="cta" href="%s">%s</a>`, html.EscapeString(href), html.EscapeString(ctaLabel))
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderText(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := stringField(data, "heading")
	body := ctx.Text(stringField(data, "body"), "Write something about your business here.")

	var b strings.Builder
	b.WriteString(`<section class="section section--text">`)
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	if body != "" {
		b.WriteString(renderMarkdownBody(body))
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

// itemListRenderer covers the family of kinds that are a heading plus a flat
// item list (features, services, process). Items accept plain strings or
// {text, icon} objects.
func itemListRenderer(class, previewHeading string) Renderer {
	return RendererFunc(func(section *document.Section, ctx Context) Output {
		data := section.Data
		heading := ctx.Text(stringField(data, "heading"), previewHeading)
		items := listField(data, "items")

		var b strings.Builder
		fmt.Fprintf(&b, `<section class="section section--%s">`, class)
		if heading != "" {
			fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
		}
		if len(items) == 0 && ctx.Preview() {
			b.WriteString(`<p class="placeholder">Add items to this block.</p>`)
		}
		if len(items) > 0 {
			b.WriteString("<ul>")
			for _, item := range items {
				b.WriteString("<li>")
				if item.Icon != "" {
					fmt.Fprintf(&b, `<span class="icon" data-icon="%s"></span>`, html.EscapeString(item.Icon))
				}
				b.WriteString(html.EscapeString(item.Text))
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</section>")
		return Output{Kind: section.Kind, HTML: b.String()}
	})
}

func renderTestimonials(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := ctx.Text(stringField(data, "heading"), "What clients say")
	quotes := objectListField(data, "quotes")

	var b strings.Builder
	b.WriteString(`<section class="section section--testimonials">`)
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	for _, quote := range quotes {
		text := coerceString(quote["text"])
		if text == "" {
			text = coerceString(quote["quote"])
		}
		if text == "" {
			continue
		}
		author := coerceString(quote["author"])
		b.WriteString("<blockquote>")
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(text))
		if author != "" {
			fmt.Fprintf(&b, "<cite>%s</cite>", html.EscapeString(author))
		}
		b.WriteString("</blockquote>")
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderStats(section *document.Section, ctx Context) Output {
	items := objectListField(section.Data, "items")

	var b strings.Builder
	b.WriteString(`<section class="section section--stats">`)
	if len(items) == 0 && ctx.Preview() {
		b.WriteString(`<p class="placeholder">Add stats to this block.</p>`)
	}
	for _, item := range items {
		value := coerceString(item["value"])
		label := coerceString(item["label"])
		if label == "" {
			label = coerceString(item["text"])
		}
		if value == "" && label == "" {
			continue
		}
		b.WriteString(`<div class="stat">`)
		if value != "" {
			fmt.Fprintf(&b, `<span class="stat-value">%s</span>`, html.EscapeString(value))
		}
		if label != "" {
			fmt.Fprintf(&b, `<span class="stat-label">%s</span>`, html.EscapeString(label))
		}
		b.WriteString("</div>")
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderFAQ(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := ctx.Text(stringField(data, "heading"), "Frequently asked questions")
	items := objectListField(data, "items")

	var b strings.Builder
	b.WriteString(`<section class="section section--faq">`)
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	for _, item := range items {
		question := coerceString(item["question"])
		if question == "" {
			question = coerceString(item["text"])
		}
		if question == "" {
			continue
		}
		answer := coerceString(item["answer"])
		b.WriteString("<details>")
		fmt.Fprintf(&b, "<summary>%s</summary>", html.EscapeString(question))
		if answer != "" {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(answer))
		}
		b.WriteString("</details>")
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderPricing(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := ctx.Text(stringField(data, "heading"), "Pricing")
	tiers := objectListField(data, "tiers")

	var b strings.Builder
	b.WriteString(`<section class="section section--pricing">`)
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	for _, tier := range tiers {
		name := coerceString(tier["name"])
		if name == "" {
			name = coerceString(tier["text"])
		}
		price := coerceString(tier["price"])
		b.WriteString(`<div class="tier">`)
		if name != "" {
			fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(name))
		}
		if price != "" {
			fmt.Fprintf(&b, `<span class="price">%s</span>`, html.EscapeString(price))
		}
		if features, ok := tier["features"].([]any); ok && len(features) > 0 {
			b.WriteString("<ul>")
			for _, feature := range features {
				if text := coerceString(feature); text != "" {
					fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(text))
				}
			}
			b.WriteString("</ul>")
		}
		b.WriteString("</div>")
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderProducts(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := ctx.Text(stringField(data, "heading"), "Products")
	items := objectListField(data, "items")

	var b strings.Builder
	b.WriteString(`<section class="section section--products">`)
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	for _, item := range items {
		name := coerceString(item["name"])
		if name == "" {
			name = coerceString(item["text"])
		}
		if name == "" {
			continue
		}
		b.WriteString(`<div class="product">`)
		if image := ctx.ImageURL(coerceString(item["image"])); image != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="%s">`, html.EscapeString(image), html.EscapeString(name))
		}
		fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(name))
		if desc := coerceString(item["description"]); desc != "" {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(desc))
		}
		if price := coerceString(item["price"]); price != "" {
			fmt.Fprintf(&b, `<span class="price">%s</span>`, html.EscapeString(price))
		}
		b.WriteString("</div>")
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderCTA(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := ctx.Text(stringField(data, "heading"), "Ready to get started?")
	body := stringField(data, "body")
	ctaLabel := ctx.Text(stringField(data, "cta_label"), "Contact us")
	ctaHref := stringField(data, "cta_href")
	if ctaHref == "" {
		ctaHref = "/contact"
	}

	var b strings.Builder
	b.WriteString(`<section class="section section--cta"`)
	if ctx.Site.Colors.Accent != "" {
		fmt.Fprintf(&b, ` style="--color-accent:%s"`, html.EscapeString(ctx.Site.Colors.Accent))
	}
	b.WriteString(">")
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	if body != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(body))
	}
	if ctaLabel != "" {
		fmt.Fprintf(&b, `<a class="cta" href="%s">%s</a>`, html.EscapeString(ctaHref), html.EscapeString(ctaLabel))
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderImage(section *document.Section, ctx Context) Output {
	data := section.Data
	image := ctx.ImageURL(stringField(data, "image"))
	alt := stringField(data, "alt")
	caption := stringField(data, "caption")

	var b strings.Builder
	b.WriteString(`<section class="section section--image">`)
	if image != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s">`, html.EscapeString(image), html.EscapeString(alt))
	} else if ctx.Preview() {
		b.WriteString(`<div class="placeholder placeholder--image">Choose an image.</div>`)
	}
	if caption != "" {
		fmt.Fprintf(&b, "<figcaption>%s</figcaption>", html.EscapeString(caption))
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderTeam(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := ctx.Text(stringField(data, "heading"), "Meet the team")
	members := objectListField(data, "members")

	var b strings.Builder
	b.WriteString(`<section class="section section--team">`)
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	for _, member := range members {
		name := coerceString(member["name"])
		if name == "" {
			name = coerceString(member["text"])
		}
		if name == "" {
			continue
		}
		b.WriteString(`<div class="member">`)
		if photo := ctx.ImageURL(coerceString(member["photo"])); photo != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="%s">`, html.EscapeString(photo), html.EscapeString(name))
		}
		fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(name))
		if role := coerceString(member["role"]); role != "" {
			fmt.Fprintf(&b, `<span class="role">%s</span>`, html.EscapeString(role))
		}
		b.WriteString("</div>")
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}

func renderPortfolio(section *document.Section, ctx Context) Output {
	data := section.Data
	heading := ctx.Text(stringField(data, "heading"), "Our work")
	items := objectListField(data, "items")

	var b strings.Builder
	b.WriteString(`<section class="section section--portfolio">`)
	if heading != "" {
		fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(heading))
	}
	for _, item := range items {
		title := coerceString(item["title"])
		if title == "" {
			title = coerceString(item["text"])
		}
		b.WriteString(`<div class="work">`)
		if image := ctx.ImageURL(coerceString(item["image"])); image != "" {
			fmt.Fprintf(&b, `<img src="%s" alt="%s">`, html.EscapeString(image), html.EscapeString(title))
		}
		if title != "" {
			fmt.Fprintf(&b, "<h3>%s</h3>", html.EscapeString(title))
		}
		b.WriteString("</div>")
	}
	b.WriteString("</section>")
	return Output{Kind: section.Kind, HTML: b.String()}
}
