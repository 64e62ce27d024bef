package entity

// Document is an opaque client-supplied record. The store does not validate
// its schema; the server only inspects id, username, password and role.
type Document map[string]any

func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

func (d Document) Field(name string) string {
	v, _ := d[name].(string)
	return v
}

// Collections known to the CRUD facade. Anything else is rejected so the
// store cannot be used as an arbitrary dumping ground.
var Collections = []string{
	"users",
	"centres",
	"agencies",
	"clients",
	"requests",
	"quotes",
	"work_types",
}

func KnownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}

	return false
}

const (
	CollectionUsers    = "users"
	CollectionRequests = "requests"

	RoleAdministrator = "Administrateur"
)
