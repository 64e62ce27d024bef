package entity

// User is the credential view of a users-collection document. Doc carries the
// full stored record so a successful login can return it without re-reading.
type User struct {
	ID       string
	Username string
	Password string
	Role     string
	Doc      Document
}

// SansPassword returns the stored document without its password field, the
// only shape ever sent back to a client.
func (u User) SansPassword() Document {
	out := make(Document, len(u.Doc))

	for k, v := range u.Doc {
		if k == "password" {
			continue
		}

		out[k] = v
	}

	return out
}
