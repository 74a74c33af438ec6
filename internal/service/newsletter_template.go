package service

import (
	"bytes"
	"html/template"

	"github.com/yuriblog/blog-backend/internal/domain"
)

var newsletterTmpl = template.Must(template.New("newsletter").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #ff1493; font-size: 28px;">Hi! I posted something new 💫</h1>
  <h2 style="color: #333; margin-top: 30px;">{{.Title}}</h2>
  <p style="color: #666; font-size: 16px; line-height: 1.6;">
    {{.Excerpt}}
  </p>
  <a href="{{.URL}}"
     style="display: inline-block; background: #ff1493; color: white;
            padding: 12px 30px; text-decoration: none; border-radius: 25px;
            margin-top: 20px; font-weight: bold;">
    Read More →
  </a>
  <hr style="margin: 40px 0; border: none; border-top: 1px solid #eee;">
  <p style="color: #999; font-size: 12px;">
    You're receiving this because you subscribed to my blog updates.<br>
    <a href="{{.URL}}" style="color: #ff1493;">Unsubscribe</a>
  </p>
</div>
`))

// newsletterSubject is the subject line for an announcement
func newsletterSubject(a *domain.Announcement) string {
	return "✨ New post: " + a.Title
}

// renderNewsletter renders the HTML body. Values are escaped.
// TODO: point the Unsubscribe link at a real unsubscribe endpoint once one exists; it reuses the post URL for now.
func renderNewsletter(a *domain.Announcement) (string, error) {
	var buf bytes.Buffer
	if err := newsletterTmpl.Execute(&buf, a); err != nil {
		return "", err
	}
	return buf.String(), nil
}
