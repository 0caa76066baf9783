package domain

// AuditTimeLayout is the format of the reg_dt and chg_dt audit columns.
const AuditTimeLayout = "2006-01-02 15:04:05"

// User is a row of the user_info table.
type User struct {
	UserID         string
	UserName       string
	PasswordHash   string // argon2id PHC string, or bcrypt for imported rows
	EmailEncrypted string // base64 AES-CBC ciphertext, see cryptox.FieldCipher
	Addr1          string
	Addr2          string
	Roles          string // comma separated, e.g. "ROLE_USER,ROLE_ADMIN"
	RegID          string
	RegDt          string
	ChgID          string
	ChgDt          string
}

// Profile is a user as shown to its owner. Email is decrypted and the
// password hash is never carried.
type Profile struct {
	UserID   string
	UserName string
	Email    string
	Addr1    string
	Addr2    string
	Roles    string
	RegID    string
	RegDt    string
	ChgID    string
	ChgDt    string
}
