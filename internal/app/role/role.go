package role

// Role определяет класс пользователя.
// Customer оформляет заказы, Staff их выполняет, Superuser может и то, и другое.
type Role int

const (
	Customer  Role = iota // не сотрудник
	Staff                 // сотрудник
	Superuser             // суперпользователь
)

// FromFlags вычисляет роль по флагам пользователя
func FromFlags(isStaff, isSuperuser bool) Role {
	switch {
	case isSuperuser:
		return Superuser
	case isStaff:
		return Staff
	default:
		return Customer
	}
}

// IsStaff сообщает, может ли роль работать с заказами как исполнитель
func (r Role) IsStaff() bool {
	return r == Staff || r == Superuser
}

// IsCustomer сообщает, может ли роль оформлять заказы
func (r Role) IsCustomer() bool {
	return r == Customer || r == Superuser
}

// Satisfies проверяет, удовлетворяет ли роль требуемой.
// Единственная точка проверки прав для всех обработчиков.
func (r Role) Satisfies(required Role) bool {
	switch required {
	case Customer:
		return r.IsCustomer()
	case Staff:
		return r.IsStaff()
	case Superuser:
		return r == Superuser
	}
	return false
}

func (r Role) String() string {
	switch r {
	case Customer:
		return "customer"
	case Staff:
		return "staff"
	case Superuser:
		return "superuser"
	}
	return "unknown"
}
