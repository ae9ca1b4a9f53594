package member

type MemberServicePort interface {
	GetAllMembers() ([]MemberRow, error)
	GetMemberByID(id uint) (*MemberDetailRow, error)
	CreateMember(input MemberInput) (uint, error)
	UpdateMember(input MemberInput) error
	DeleteMember(id uint) error
}

var _ MemberServicePort = (*MemberService)(nil)
