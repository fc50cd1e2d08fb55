// Package view renders the screen and its fragments as server side HTML.
package view

import (
	"embed"
	"html/template"
	"io"
	"net/url"
	"time"

	"wedump/internal/domain/entity"
	"wedump/internal/errors"
	"wedump/internal/usecase"
	"wedump/internal/util"

	"github.com/labstack/echo/v4"
)

// Template names.
const (
	TemplateScreen = "screen.html"
	TemplateWall   = "wall.html"
)

const avatarService = "https://ui-avatars.com/api/"

//go:embed templates/*.html
var templateFS embed.FS

// Screen is everything the page needs for one render.
type Screen struct {
	Identity      *entity.Identity
	Page          usecase.Page
	Pages         []usecase.Page
	Photos        []*entity.Photo
	Users         []*entity.UserProfile
	Notifications []*entity.Notification
	Stats         usecase.FeedStats
}

// SignedIn reports whether the app screen or the auth screen is shown.
func (s *Screen) SignedIn() bool {
	return s.Identity != nil
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
	now       func() time.Time
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	return newRenderer(time.Now)
}

func newRenderer(now func() time.Time) (*Renderer, error) {
	r := &Renderer{now: now}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"timeAgo": r.timeAgo,
		"avatar":  Avatar,
		"isOwner": isOwner,
		"isLiked": isLiked,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	r.templates = tmpl

	return r, nil
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.WithStack(r.templates.ExecuteTemplate(w, name, data))
}

func (r *Renderer) timeAgo(t time.Time) string {
	return util.FormatTimeAgo(r.now(), t)
}

// Avatar returns photoURL or a generated initials avatar for name.
func Avatar(photoURL, name string) string {
	if photoURL != "" {
		return photoURL
	}

	return avatarService + "?name=" + url.QueryEscape(name) + "&background=667eea&color=fff"
}

func isOwner(identity *entity.Identity, photo *entity.Photo) bool {
	return identity != nil && photo.IsOwnedBy(identity.UID)
}

func isLiked(identity *entity.Identity, photo *entity.Photo) bool {
	return identity != nil && photo.IsLikedBy(identity.UID)
}
