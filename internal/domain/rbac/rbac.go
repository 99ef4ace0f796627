package rbac

// Papéis do painel, do mais ao menos privilegiado. O papel vem gravado
// no usuário, entra no token e é resolvido uma única vez por requisição.
type Role string

const (
	RoleAdmin        Role = "administrator"
	RoleOwner        Role = "owner"
	RoleReceptionist Role = "receptionist"
	RoleStaff        Role = "staff"
)

func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin, RoleOwner, RoleReceptionist, RoleStaff:
		return Role(s)
	}
	// qualquer papel desconhecido cai no nível mais restrito
	return RoleStaff
}

type Entity string

const (
	EntityPerson      Entity = "person"
	EntityClient      Entity = "client"
	EntityService     Entity = "service"
	EntityStaff       Entity = "staff"
	EntityTimeSlot    Entity = "time_slot"
	EntitySlot        Entity = "slot"
	EntityAppointment Entity = "appointment"
)

// Policy é a projeção de uma listagem para um papel: quais colunas
// aparecem, quais filtros existem e quais ações em massa são permitidas.
type Policy struct {
	Fields      []string
	Filters     []string
	BulkActions []string
}

func (p Policy) HasField(name string) bool {
	for _, f := range p.Fields {
		if f == name {
			return true
		}
	}
	return false
}

func (p Policy) HasFilter(name string) bool {
	for _, f := range p.Filters {
		if f == name {
			return true
		}
	}
	return false
}

func (p Policy) AllowsBulk(action string) bool {
	for _, a := range p.BulkActions {
		if a == action {
			return true
		}
	}
	return false
}

// For devolve a política de projeção de uma entidade para um papel.
// Papéis sem entrada explícita recebem a projeção do nível staff.
func For(role Role, entity Entity) Policy {
	if byRole, ok := table[entity]; ok {
		if p, ok := byRole[role]; ok {
			return p
		}
		return byRole[RoleStaff]
	}
	return Policy{}
}

// CanGenerateReport limita o relatório de ganhos a administrador e dono
func CanGenerateReport(role Role) bool {
	return role == RoleAdmin || role == RoleOwner
}

// A tabela única substitui os condicionais por papel espalhados em cada
// listagem. Owner e staff herdam explicitamente onde o conjunto coincide.
var table = map[Entity]map[Role]Policy{
	EntityPerson: {
		RoleAdmin: {
			Fields:  []string{"full_name", "birth_date", "cpf", "email", "mobile", "active", "created_at", "updated_at"},
			Filters: []string{"active"},
		},
		RoleOwner: {
			Fields: []string{"full_name", "birth_date", "cpf", "email", "mobile"},
		},
		RoleReceptionist: {
			Fields:  []string{"full_name", "birth_date", "cpf", "email", "mobile", "active"},
			Filters: []string{"active"},
		},
		RoleStaff: {
			Fields: []string{"id", "full_name"},
		},
	},

	EntityClient: {
		RoleAdmin: {
			Fields:  []string{"id", "person", "projected_revenue_30d", "total_revenue", "active", "created_at", "updated_at"},
			Filters: []string{"active"},
		},
		RoleOwner: {
			Fields: []string{"id", "person", "projected_revenue_30d", "total_revenue"},
		},
		RoleReceptionist: {
			Fields:  []string{"id", "person", "active"},
			Filters: []string{"active"},
		},
		RoleStaff: {
			Fields: []string{"id", "person"},
		},
	},

	EntityService: {
		RoleAdmin: {
			Fields:  []string{"id", "name", "price", "duration_minutes", "active", "created_at", "updated_at"},
			Filters: []string{"active", "price_range"},
		},
		RoleOwner: {
			Fields:  []string{"id", "name", "price", "duration_minutes"},
			Filters: []string{"price_range"},
		},
		RoleReceptionist: {
			Fields:  []string{"id", "name", "price", "duration_minutes", "active"},
			Filters: []string{"active", "price_range"},
		},
		RoleStaff: {
			Fields:  []string{"id", "name", "price", "duration_minutes"},
			Filters: []string{"price_range"},
		},
	},

	EntityStaff: {
		RoleAdmin: {
			Fields:  []string{"id", "person", "total_revenue", "projected_revenue_30d", "services", "active", "created_at", "updated_at"},
			Filters: []string{"active", "service"},
		},
		RoleOwner: {
			Fields:  []string{"id", "person", "total_revenue", "projected_revenue_30d", "services"},
			Filters: []string{"service"},
		},
		RoleReceptionist: {
			Fields:  []string{"id", "person", "services", "active"},
			Filters: []string{"active", "service"},
		},
		RoleStaff: {
			Fields: []string{"id", "person", "services"},
		},
	},

	EntityTimeSlot: {
		RoleAdmin: {
			Fields:  []string{"id", "starts_at", "active", "created_at", "updated_at"},
			Filters: []string{"active", "date_range"},
		},
		RoleOwner: {
			Fields:  []string{"id", "starts_at"},
			Filters: []string{"date_range"},
		},
		RoleReceptionist: {
			Fields:  []string{"id", "starts_at", "active"},
			Filters: []string{"active", "date_range"},
		},
		RoleStaff: {
			Fields:  []string{"id", "starts_at"},
			Filters: []string{"date_range"},
		},
	},

	EntitySlot: {
		RoleAdmin: {
			Fields:  []string{"id", "staff", "time_slot", "services", "active", "created_at", "updated_at"},
			Filters: []string{"date_range", "staff", "service", "active"},
		},
		RoleOwner: {
			Fields:  []string{"id", "staff", "time_slot", "services"},
			Filters: []string{"date_range", "staff", "service"},
		},
		RoleReceptionist: {
			Fields:  []string{"id", "staff", "time_slot", "services", "active"},
			Filters: []string{"date_range", "staff", "service", "active"},
		},
		RoleStaff: {
			Fields:  []string{"id", "staff", "time_slot", "services"},
			Filters: []string{"date_range", "staff", "service"},
		},
	},

	EntityAppointment: {
		RoleAdmin: {
			Fields:      []string{"id", "client", "time_slot", "staff", "services", "status", "active", "created_at", "updated_at"},
			Filters:     []string{"date_range", "status", "staff", "active"},
			BulkActions: []string{"mark_completed", "mark_canceled"},
		},
		RoleOwner: {
			Fields:  []string{"id", "client", "time_slot", "staff", "services", "status"},
			Filters: []string{"date_range", "status", "staff"},
		},
		RoleReceptionist: {
			Fields:      []string{"id", "client", "time_slot", "staff", "services", "status", "active"},
			Filters:     []string{"date_range", "status", "staff", "active"},
			BulkActions: []string{"mark_completed", "mark_canceled"},
		},
		RoleStaff: {
			Fields:  []string{"id", "client", "time_slot", "staff", "services", "status"},
			Filters: []string{"date_range", "status", "staff"},
		},
	},
}
