package model

type User struct {
	UID         string `db:"uid" json:"uid"`
	DisplayName string `db:"display_name" json:"displayName"`
	PhotoURL    string `db:"photo_url" json:"photoURL"`
}

type ProviderKind string

const (
	GoogleProvider   ProviderKind = "google"
	FacebookProvider ProviderKind = "facebook"
)
