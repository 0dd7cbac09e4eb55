package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/access"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time { return &t }

// afiliado construye un principal con empleado en la sucursal/empresa indicadas.
func afiliado(role entity.Role, employeeID, branchID, companyID string) *entity.Principal {
	return &entity.Principal{
		User: &entity.User{ID: "u-" + employeeID, IsActive: true},
		Affiliation: &entity.Affiliation{
			Employee: &entity.Employee{ID: employeeID, BranchID: branchID, Role: role, IsActive: true},
			Branch:   &entity.Branch{ID: branchID, CompanyID: companyID},
			Company:  &entity.Company{ID: companyID},
		},
	}
}

func superuser() *entity.Principal {
	return &entity.Principal{User: &entity.User{ID: "root", IsActive: true, IsSuperuser: true}}
}

func staff() *entity.Principal {
	return &entity.Principal{User: &entity.User{ID: "staff", IsActive: true, IsStaff: true}}
}

func sinAfiliacion() *entity.Principal {
	return &entity.Principal{User: &entity.User{ID: "solo", IsActive: true}}
}

func ventana(level entity.AccessLevel, allowed ...string) *entity.MaintenanceMode {
	return &entity.MaintenanceMode{
		ID:               "m1",
		Status:           entity.MaintenanceInProgress,
		ActualStartTime:  ptrTime(testNow.Add(-time.Hour)),
		PlannedEndTime:   testNow.Add(2 * time.Hour),
		BlockAccess:      true,
		AccessLevel:      level,
		AllowedCompanies: allowed,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Compuerta de mantenimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccess_SuperuserSiemprePasa(t *testing.T) {
	levels := []entity.AccessLevel{
		entity.AccessNone, entity.AccessSuperuser, entity.AccessStaff,
		entity.AccessCompanyAdmin, entity.AccessAll, entity.AccessLevel("desconocido"),
	}
	for _, level := range levels {
		for _, allowed := range [][]string{nil, {"otra-empresa"}} {
			assert.True(t, access.CanAccess(ventana(level, allowed...), superuser()),
				"superuser debe pasar con access_level=%s allowed=%v", level, allowed)
		}
	}
}

func TestCanAccess_SinVentanaOSinBloqueo(t *testing.T) {
	assert.True(t, access.CanAccess(nil, nil), "sin ventana se permite incluso sin autenticar")

	w := ventana(entity.AccessNone)
	w.BlockAccess = false
	assert.True(t, access.CanAccess(w, sinAfiliacion()), "block_access=false no bloquea")
}

func TestCanAccess_NoAutenticadoBloqueado(t *testing.T) {
	assert.False(t, access.CanAccess(ventana(entity.AccessAll), nil))
}

func TestCanAccess_PorNivel(t *testing.T) {
	admin := afiliado(entity.RoleCompanyAdmin, "e1", "b1", "c1")
	branchAdmin := afiliado(entity.RoleBranchAdmin, "e2", "b1", "c1")

	cases := []struct {
		name      string
		window    *entity.MaintenanceMode
		principal *entity.Principal
		want      bool
	}{
		{"none bloquea staff", ventana(entity.AccessNone), staff(), false},
		{"superuser bloquea staff", ventana(entity.AccessSuperuser), staff(), false},
		{"staff permite staff", ventana(entity.AccessStaff), staff(), true},
		{"staff bloquea company_admin", ventana(entity.AccessStaff), admin, false},
		{"company_admin permite admin", ventana(entity.AccessCompanyAdmin), admin, true},
		{"company_admin bloquea branch_admin", ventana(entity.AccessCompanyAdmin), branchAdmin, false},
		{"company_admin bloquea sin afiliación", ventana(entity.AccessCompanyAdmin), sinAfiliacion(), false},
		{"company_admin con lista que incluye", ventana(entity.AccessCompanyAdmin, "c1"), admin, true},
		{"company_admin con lista que excluye", ventana(entity.AccessCompanyAdmin, "c9"), admin, false},
		{"all permite a cualquiera", ventana(entity.AccessAll), branchAdmin, true},
		{"all con lista que excluye", ventana(entity.AccessAll, "c9"), branchAdmin, false},
		{"all con lista y sin afiliación", ventana(entity.AccessAll, "c9"), sinAfiliacion(), true},
		{"nivel desconocido bloquea", ventana(entity.AccessLevel("x")), admin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, access.CanAccess(tc.window, tc.principal))
		})
	}
}

func TestCurrentMaintenance_Seleccion(t *testing.T) {
	finalizada := ventana(entity.AccessAll)
	finalizada.ID = "fin"
	finalizada.ActualEndTime = ptrTime(testNow.Add(-time.Minute))

	futura := ventana(entity.AccessAll)
	futura.ID = "fut"
	futura.ActualStartTime = ptrTime(testNow.Add(time.Minute))

	programada := ventana(entity.AccessAll)
	programada.ID = "prog"
	programada.Status = entity.MaintenanceScheduled

	assert.Nil(t, access.CurrentMaintenance(nil, testNow))
	assert.Nil(t, access.CurrentMaintenance([]*entity.MaintenanceMode{finalizada, futura, programada}, testNow))

	// Fin exactamente en now ya no está activa.
	borde := ventana(entity.AccessAll)
	borde.ActualEndTime = ptrTime(testNow)
	assert.Nil(t, access.CurrentMaintenance([]*entity.MaintenanceMode{borde}, testNow))
}

func TestCurrentMaintenance_VariasActivasGanaLaMasReciente(t *testing.T) {
	vieja := ventana(entity.AccessAll)
	vieja.ID = "a"
	vieja.ActualStartTime = ptrTime(testNow.Add(-3 * time.Hour))

	reciente := ventana(entity.AccessStaff)
	reciente.ID = "b"
	reciente.ActualStartTime = ptrTime(testNow.Add(-10 * time.Minute))

	got := access.CurrentMaintenance([]*entity.MaintenanceMode{vieja, reciente}, testNow)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	// El orden de entrada no cambia el resultado.
	got = access.CurrentMaintenance([]*entity.MaintenanceMode{reciente, vieja}, testNow)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	// Empate de inicio: menor ID.
	gemela := ventana(entity.AccessAll)
	gemela.ID = "0"
	gemela.ActualStartTime = ptrTime(*reciente.ActualStartTime)
	got = access.CurrentMaintenance([]*entity.MaintenanceMode{reciente, gemela}, testNow)
	require.NotNil(t, got)
	assert.Equal(t, "0", got.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compuerta de suscripción
// ──────────────────────────────────────────────────────────────────────────────

func suscripcion(id string, start, end time.Time) *entity.Subscription {
	return &entity.Subscription{
		ID: id, CompanyID: "c1", Status: entity.SubscriptionActive,
		StartDate: start, EndDate: end, IsActive: true,
	}
}

func TestCurrentSubscription_Vigencia(t *testing.T) {
	vencida := suscripcion("s1", testNow.AddDate(0, -1, 0), testNow.AddDate(0, 0, -1))
	futura := suscripcion("s2", testNow.AddDate(0, 0, 1), testNow.AddDate(0, 1, 0))
	cancelada := suscripcion("s3", testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0))
	cancelada.Status = entity.SubscriptionCanceled
	inactiva := suscripcion("s4", testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0))
	inactiva.IsActive = false
	prueba := suscripcion("s5", testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0))
	prueba.Status = entity.SubscriptionTrial

	assert.Nil(t, access.CurrentSubscription([]*entity.Subscription{vencida, futura, cancelada, inactiva, prueba}, testNow))

	// Los extremos de la ventana son inclusivos.
	borde := suscripcion("s6", testNow, testNow)
	got := access.CurrentSubscription([]*entity.Subscription{borde}, testNow)
	require.NotNil(t, got)
	assert.Equal(t, "s6", got.ID)
}

func TestCurrentSubscription_DevuelveUnaSolaDeterminista(t *testing.T) {
	a := suscripcion("a", testNow.AddDate(0, -2, 0), testNow.AddDate(0, 1, 0))
	b := suscripcion("b", testNow.AddDate(0, -1, 0), testNow.AddDate(0, 1, 0))
	c := suscripcion("c", testNow.AddDate(0, -1, 0), testNow.AddDate(0, 2, 0))

	for _, subs := range [][]*entity.Subscription{{a, b, c}, {c, b, a}, {b, a, c}} {
		got := access.CurrentSubscription(subs, testNow)
		require.NotNil(t, got)
		assert.Equal(t, "b", got.ID, "más reciente por inicio; empate resuelto por menor ID")
	}
}

func TestIsEntitled_PrivilegiadosSiempre(t *testing.T) {
	assert.True(t, access.IsEntitled(superuser(), nil, testNow))
	assert.True(t, access.IsEntitled(staff(), nil, testNow))
	assert.False(t, access.IsEntitled(afiliado(entity.RoleCompanyAdmin, "e1", "b1", "c1"), nil, testNow))
}

// ──────────────────────────────────────────────────────────────────────────────
// Motor de alcance
// ──────────────────────────────────────────────────────────────────────────────

func TestScopeFor_EmpleadosPorRol(t *testing.T) {
	assert.Equal(t, access.ScopeAll, access.ScopeFor(superuser(), entity.EntityEmployee).Kind)
	assert.Equal(t, access.ScopeAll, access.ScopeFor(staff(), entity.EntityEmployee).Kind)
	assert.Equal(t, access.ScopeNone, access.ScopeFor(sinAfiliacion(), entity.EntityEmployee).Kind)
	assert.Equal(t, access.ScopeNone, access.ScopeFor(nil, entity.EntityEmployee).Kind)

	admin := access.ScopeFor(afiliado(entity.RoleCompanyAdmin, "e1", "b1", "c1"), entity.EntityEmployee)
	assert.Equal(t, access.Scope{Kind: access.ScopeCompany, CompanyID: "c1"}, admin)

	branch := access.ScopeFor(afiliado(entity.RoleBranchAdmin, "e2", "b1", "c1"), entity.EntityEmployee)
	assert.Equal(t, access.ScopeBranch, branch.Kind)
	assert.Equal(t, "b1", branch.BranchID)

	self := access.ScopeFor(afiliado(entity.RoleEmployee, "e3", "b1", "c1"), entity.EntityEmployee)
	assert.Equal(t, access.ScopeSelf, self.Kind)
	assert.Equal(t, "e3", self.EmployeeID)
}

func TestScopeFor_EntidadesDelTenantHeredanEmpresa(t *testing.T) {
	p := afiliado(entity.RoleEmployee, "e3", "b1", "c1")
	for _, et := range []entity.EntityType{
		entity.EntityCompany, entity.EntityBranch, entity.EntitySubscription, entity.EntityInvoice,
		entity.EntityNotification, entity.EntityIntegration, entity.EntityFileStorage,
		entity.EntityAPIUsage, entity.EntityAuditLog, entity.EntityCompanyBranding,
	} {
		assert.Equal(t, access.Scope{Kind: access.ScopeCompany, CompanyID: "c1"}, access.ScopeFor(p, et), "entidad %s", et)
	}
	assert.Equal(t, access.ScopeAll, access.ScopeFor(p, entity.EntityPlan).Kind)
}

// El alcance de branch_admin sobre empleados es subconjunto del de company_admin del mismo tenant.
func TestScope_MonotoniaBranchAdminEnCompanyAdmin(t *testing.T) {
	companyAdmin := access.ScopeFor(afiliado(entity.RoleCompanyAdmin, "e1", "b1", "c1"), entity.EntityEmployee)
	branchAdmin := access.ScopeFor(afiliado(entity.RoleBranchAdmin, "e2", "b2", "c1"), entity.EntityEmployee)

	filas := []entity.Ownership{}
	for _, c := range []string{"c1", "c2"} {
		for _, b := range []string{"b1", "b2", "b3"} {
			for _, e := range []string{"e1", "e2", "e9"} {
				filas = append(filas, entity.Ownership{CompanyID: c, BranchID: c + b, EmployeeID: c + b + e})
			}
		}
	}
	// Sucursales del tenant c1 con los IDs reales.
	filas = append(filas,
		entity.Ownership{CompanyID: "c1", BranchID: "b2", EmployeeID: "e2"},
		entity.Ownership{CompanyID: "c1", BranchID: "b2", EmployeeID: "e7"},
		entity.Ownership{CompanyID: "c1", BranchID: "b1", EmployeeID: "e1"},
	)
	for _, o := range filas {
		if branchAdmin.Contains(o) {
			assert.True(t, companyAdmin.Contains(o), "fila %+v visible para branch_admin pero no para company_admin", o)
		}
	}
}

func TestDecide_Operaciones(t *testing.T) {
	empleado := afiliado(entity.RoleEmployee, "e3", "b1", "c1")
	propia := entity.Ownership{CompanyID: "c1"}
	ajena := entity.Ownership{CompanyID: "c2"}

	companyAdmin := afiliado(entity.RoleCompanyAdmin, "e1", "b1", "c1")
	branchAdmin := afiliado(entity.RoleBranchAdmin, "e2", "b1", "c1")

	assert.NoError(t, access.Decide(empleado, entity.EntityCompany, access.OpRead, propia))
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityCompany, access.OpRead, ajena), domain.ErrForbidden)
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityCompany, access.OpUpdate, propia), domain.ErrForbidden)
	assert.ErrorIs(t, access.Decide(branchAdmin, entity.EntityCompany, access.OpUpdate, propia), domain.ErrForbidden)
	assert.NoError(t, access.Decide(companyAdmin, entity.EntityCompany, access.OpUpdate, propia))
	assert.ErrorIs(t, access.Decide(companyAdmin, entity.EntityCompany, access.OpUpdate, ajena), domain.ErrForbidden)

	// Suscripciones: solo company_admin de la empresa.
	assert.ErrorIs(t, access.Decide(empleado, entity.EntitySubscription, access.OpUpdate, propia), domain.ErrForbidden)
	assert.ErrorIs(t, access.Decide(branchAdmin, entity.EntitySubscription, access.OpUpdate, propia), domain.ErrForbidden)
	assert.NoError(t, access.Decide(companyAdmin, entity.EntitySubscription, access.OpUpdate, propia))

	// Sucursales: branch_admin solo la suya; crear una sucursal requiere company_admin.
	suya := entity.Ownership{CompanyID: "c1", BranchID: "b1"}
	otra := entity.Ownership{CompanyID: "c1", BranchID: "b2"}
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityBranch, access.OpDelete, otra), domain.ErrForbidden)
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityBranch, access.OpUpdate, suya), domain.ErrForbidden)
	assert.NoError(t, access.Decide(branchAdmin, entity.EntityBranch, access.OpUpdate, suya))
	assert.ErrorIs(t, access.Decide(branchAdmin, entity.EntityBranch, access.OpDelete, otra), domain.ErrForbidden)
	assert.ErrorIs(t, access.Decide(branchAdmin, entity.EntityBranch, access.OpCreate, propia), domain.ErrForbidden)
	assert.NoError(t, access.Decide(companyAdmin, entity.EntityBranch, access.OpDelete, otra))
	assert.NoError(t, access.Decide(companyAdmin, entity.EntityBranch, access.OpCreate, propia))

	// Crear una empresa nueva (sin tenant) solo lo hace el staff.
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityCompany, access.OpCreate, entity.Ownership{}), domain.ErrForbidden)
	assert.NoError(t, access.Decide(staff(), entity.EntityCompany, access.OpCreate, entity.Ownership{}))

	// Entidades globales: lectura libre, escritura privilegiada.
	assert.NoError(t, access.Decide(empleado, entity.EntityMaintenance, access.OpRead, entity.Ownership{}))
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityMaintenance, access.OpUpdate, entity.Ownership{}), domain.ErrForbidden)

	// Auditoría: nunca se modifica, ni siquiera un superuser.
	assert.ErrorIs(t, access.Decide(superuser(), entity.EntityAuditLog, access.OpDelete, propia), domain.ErrAuditImmutable)
	assert.NoError(t, access.Decide(empleado, entity.EntityAuditLog, access.OpRead, propia))

	// Una fila de auditoría sin empresa (acción de staff) no es pública.
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityAuditLog, access.OpRead, entity.Ownership{}), domain.ErrForbidden)
	assert.ErrorIs(t, access.Decide(sinAfiliacion(), entity.EntityAuditLog, access.OpRead, entity.Ownership{}), domain.ErrForbidden)
	assert.NoError(t, access.Decide(staff(), entity.EntityAuditLog, access.OpRead, entity.Ownership{}))

	// Sin principal no hay acceso.
	assert.ErrorIs(t, access.Decide(nil, entity.EntityPlan, access.OpRead, entity.Ownership{}), domain.ErrForbidden)
}

func TestDecide_EmpleadosPorRol(t *testing.T) {
	yo := entity.Ownership{CompanyID: "c1", BranchID: "b1", EmployeeID: "e3"}
	companero := entity.Ownership{CompanyID: "c1", BranchID: "b1", EmployeeID: "e4"}
	otraSucursal := entity.Ownership{CompanyID: "c1", BranchID: "b2", EmployeeID: "e5"}

	empleado := afiliado(entity.RoleEmployee, "e3", "b1", "c1")
	assert.NoError(t, access.Decide(empleado, entity.EntityEmployee, access.OpUpdate, yo))
	assert.ErrorIs(t, access.Decide(empleado, entity.EntityEmployee, access.OpRead, companero), domain.ErrForbidden)

	branchAdmin := afiliado(entity.RoleBranchAdmin, "e1", "b1", "c1")
	assert.NoError(t, access.Decide(branchAdmin, entity.EntityEmployee, access.OpRead, companero))
	assert.ErrorIs(t, access.Decide(branchAdmin, entity.EntityEmployee, access.OpRead, otraSucursal), domain.ErrForbidden)
	// Crear en su sucursal: se autoriza contra el padre.
	assert.NoError(t, access.Decide(branchAdmin, entity.EntityEmployee, access.OpCreate, entity.Ownership{CompanyID: "c1", BranchID: "b1"}))

	companyAdmin := afiliado(entity.RoleCompanyAdmin, "e9", "b3", "c1")
	assert.NoError(t, access.Decide(companyAdmin, entity.EntityEmployee, access.OpUpdate, otraSucursal))
}

func TestScope_NotificacionesGlobalesVisibles(t *testing.T) {
	s := access.ScopeFor(afiliado(entity.RoleEmployee, "e3", "b1", "c1"), entity.EntityNotification)
	assert.True(t, s.Allows(entity.EntityNotification, entity.Ownership{}), "una notificación sin empresa es visible para cualquier afiliado")
	assert.True(t, s.Allows(entity.EntityNotification, entity.Ownership{CompanyID: "c1"}))
	assert.False(t, s.Allows(entity.EntityNotification, entity.Ownership{CompanyID: "c2"}))

	// Otras entidades del tenant no heredan la excepción.
	auditoria := access.ScopeFor(afiliado(entity.RoleEmployee, "e3", "b1", "c1"), entity.EntityAuditLog)
	assert.False(t, auditoria.Allows(entity.EntityAuditLog, entity.Ownership{}))
}

func TestScope_SinAfiliacionNoVeNada(t *testing.T) {
	s := access.ScopeFor(sinAfiliacion(), entity.EntityNotification)
	assert.Equal(t, access.ScopeNone, s.Kind)
	assert.False(t, s.Allows(entity.EntityNotification, entity.Ownership{}))
	assert.False(t, s.Allows(entity.EntityNotification, entity.Ownership{CompanyID: "c1"}))
}

func TestScopeFor_PrincipalNulo(t *testing.T) {
	assert.Equal(t, access.ScopeNone, access.ScopeFor(nil, entity.EntityPlan).Kind)
	assert.Equal(t, access.ScopeNone, access.ScopeFor(&entity.Principal{}, entity.EntityCompany).Kind)
}

func TestWriteScope_PorRol(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
		et   entity.EntityType
		want access.ScopeKind
	}{
		{"company_admin empresa", entity.RoleCompanyAdmin, entity.EntityCompany, access.ScopeCompany},
		{"company_admin suscripción", entity.RoleCompanyAdmin, entity.EntitySubscription, access.ScopeCompany},
		{"company_admin empleados", entity.RoleCompanyAdmin, entity.EntityEmployee, access.ScopeCompany},
		{"branch_admin sucursal", entity.RoleBranchAdmin, entity.EntityBranch, access.ScopeBranch},
		{"branch_admin empleados", entity.RoleBranchAdmin, entity.EntityEmployee, access.ScopeBranch},
		{"branch_admin empresa", entity.RoleBranchAdmin, entity.EntityCompany, access.ScopeNone},
		{"branch_admin suscripción", entity.RoleBranchAdmin, entity.EntitySubscription, access.ScopeNone},
		{"employee propio", entity.RoleEmployee, entity.EntityEmployee, access.ScopeSelf},
		{"employee sucursal", entity.RoleEmployee, entity.EntityBranch, access.ScopeNone},
		{"employee empresa", entity.RoleEmployee, entity.EntityCompany, access.ScopeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := access.WriteScope(afiliado(tt.role, "e1", "b1", "c1"), tt.et)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
	assert.Equal(t, access.ScopeNone, access.WriteScope(sinAfiliacion(), entity.EntityEmployee).Kind)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comunicados
// ──────────────────────────────────────────────────────────────────────────────

func comunicado(role string, companies ...string) *entity.Announcement {
	return &entity.Announcement{
		ID:              "an1",
		Title:           "Nueva versión",
		TargetRole:      role,
		TargetCompanies: companies,
		PublishDate:     testNow.Add(-time.Hour),
		IsActive:        true,
	}
}

func TestCanViewAnnouncement(t *testing.T) {
	empleado := afiliado(entity.RoleEmployee, "e3", "b1", "c1")
	branchAdmin := afiliado(entity.RoleBranchAdmin, "e2", "b1", "c1")
	companyAdmin := afiliado(entity.RoleCompanyAdmin, "e1", "b1", "c1")

	programado := comunicado(entity.AnnouncementTargetAll)
	programado.PublishDate = testNow.Add(time.Hour)
	vencido := comunicado(entity.AnnouncementTargetAll)
	vencido.EndDate = ptrTime(testNow.Add(-time.Minute))
	vigente := comunicado(entity.AnnouncementTargetAll)
	vigente.EndDate = ptrTime(testNow.Add(time.Minute))
	inactivo := comunicado(entity.AnnouncementTargetAll)
	inactivo.IsActive = false

	tests := []struct {
		name      string
		a         *entity.Announcement
		principal *entity.Principal
		want      bool
	}{
		{"todos los roles", comunicado(entity.AnnouncementTargetAll), empleado, true},
		{"solo company_admin: empleado no", comunicado(entity.AnnouncementTargetCompanyAdmin), empleado, false},
		{"solo company_admin: company_admin sí", comunicado(entity.AnnouncementTargetCompanyAdmin), companyAdmin, true},
		{"solo branch_admin: company_admin no", comunicado(entity.AnnouncementTargetBranchAdmin), companyAdmin, false},
		{"solo branch_admin: branch_admin sí", comunicado(entity.AnnouncementTargetBranchAdmin), branchAdmin, true},
		{"solo employee: empleado sí", comunicado(entity.AnnouncementTargetEmployee), empleado, true},
		{"solo employee: branch_admin no", comunicado(entity.AnnouncementTargetEmployee), branchAdmin, false},
		{"rol desconocido", comunicado("auditor"), companyAdmin, false},
		{"empresa destinataria", comunicado(entity.AnnouncementTargetAll, "c1", "c9"), empleado, true},
		{"otra empresa destinataria", comunicado(entity.AnnouncementTargetAll, "c2"), empleado, false},
		{"programado", programado, empleado, false},
		{"vencido", vencido, empleado, false},
		{"con fin futuro", vigente, empleado, true},
		{"inactivo", inactivo, empleado, false},
		{"sin afiliación", comunicado(entity.AnnouncementTargetAll), sinAfiliacion(), false},
		{"sin principal", comunicado(entity.AnnouncementTargetAll), nil, false},
		{"staff ve otra empresa", comunicado(entity.AnnouncementTargetEmployee, "c2"), staff(), true},
		{"superuser ve programados", programado, superuser(), true},
		{"comunicado nil", nil, superuser(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.CanViewAnnouncement(tt.a, tt.principal, testNow))
		})
	}
}
