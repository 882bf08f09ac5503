package domain

type ResourceKind string

const (
	ResourceEmbeddedVideo ResourceKind = "EmbeddedVideo"
)

// Outline is the unit tree of one subject for one education period.
type Outline struct {
	SubjectID string
	Units     []Unit
}

type Unit struct {
	Name     string
	Title    string // optional
	Subunits []Subunit
}

// Label returns the text shown when picking units.
func (u Unit) Label() string {
	if u.Title == "" || u.Title == u.Name {
		return u.Name
	}
	return u.Name + ": " + u.Title
}

type Subunit struct {
	Resources []Resource
}

// Resource is one entry in a subunit. VideoID and DisplayName are only
// populated for embedded videos.
type Resource struct {
	Kind        ResourceKind
	VideoID     string
	DisplayName string
}

// IsVideo reports whether the resource is an embedded video that carries an id.
func (r Resource) IsVideo() bool {
	return r.Kind == ResourceEmbeddedVideo && r.VideoID != ""
}

// Videos returns the embedded videos of the unit in outline order.
func (u Unit) Videos() []Resource {
	var out []Resource
	for _, su := range u.Subunits {
		for _, r := range su.Resources {
			if r.IsVideo() {
				out = append(out, r)
			}
		}
	}
	return out
}
