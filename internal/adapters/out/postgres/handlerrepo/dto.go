// Package handlerrepo persists the handler authorization set. The table holds
// one row per authorized principal; revocation deletes the row, so absence and
// "not authorized" are the same thing.
package handlerrepo

// AuthorizedHandlerDTO represents the database structure for the handler
// authorization set.
type AuthorizedHandlerDTO struct {
	Principal  string `gorm:"primaryKey;size:128"`
	Authorized bool
}

// TableName specifies the database table name for authorization entries.
func (AuthorizedHandlerDTO) TableName() string {
	return "authorized_handlers"
}
