package appointment

// ===============================
// Status
// ===============================

// Status usa o vocabulário que o front-end já consome na API.
type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCompleted Status = "realizado"
	StatusCancelled Status = "cancelado"
)

// ParseStatus valida um status vindo da borda HTTP.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// IsTerminal indica que nenhuma transição sai deste status.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Live indica que o agendamento ainda ocupa o slot do barbeiro.
func (s Status) Live() bool {
	return s != StatusCancelled
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

// CanTransition responde se a aresta from→to existe no grafo de estados,
// independente de quem pede.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleClient  Role = "cliente"
	RoleBarber  Role = "barbeiro"
	RoleManager Role = "gerente"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleClient, RoleBarber, RoleManager:
		return Role(s), true
	}
	return "", false
}

// Actor é quem está executando a operação, extraído do token.
// BarberID é zero quando o usuário não tem perfil de barbeiro.
type Actor struct {
	UserID   uint
	BarberID uint
	Role     Role
}
