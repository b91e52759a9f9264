package audit

// ActivityType is the closed set of auditable admin actions. The store layer
// rejects anything outside it.
type ActivityType string

const (
	TypeLogin        ActivityType = "login"
	TypeMemberAdd    ActivityType = "member_add"
	TypeMemberEdit   ActivityType = "member_edit"
	TypeMemberDelete ActivityType = "member_delete"
	TypeAdminCreate  ActivityType = "admin_create"
	TypeAdminDelete  ActivityType = "admin_delete"
	TypeTransaction  ActivityType = "transaction"
	TypeDownload     ActivityType = "download"
)

func (t ActivityType) Valid() bool {
	switch t {
	case TypeLogin, TypeMemberAdd, TypeMemberEdit, TypeMemberDelete,
		TypeAdminCreate, TypeAdminDelete, TypeTransaction, TypeDownload:
		return true
	}
	return false
}
