// Package audit registra las mutaciones en audit_logs dentro de la misma transacción que las produce.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/jhoicas/Saas-api/internal/domain"
	"github.com/jhoicas/Saas-api/internal/domain/entity"
	"github.com/jhoicas/Saas-api/internal/domain/repository"
	"github.com/jhoicas/Saas-api/pkg/clock"
)

// Campos que nunca se guardan en changes, a cualquier profundidad.
var secretFields = []string{"password", "password_hash", "api_key", "api_secret"}

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
// Lo implementa *postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.TxRepos) error) error
}

// Target objeto afectado. CompanyID es el tenant alcanzable desde el objeto ("" si no tiene).
type Target struct {
	Type      entity.EntityType
	ID        string
	Repr      string
	CompanyID string
}

// Meta origen de la petición.
type Meta struct {
	IP        string
	UserAgent string
}

// Entry una operación a registrar.
type Entry struct {
	Principal *entity.Principal
	Action    string
	Target    Target
	Payload   any
	Meta      Meta
}

// Recorder inserta registros de auditoría.
type Recorder struct {
	tx    TxRunner
	clock clock.Clock
}

// NewRecorder construye el registrador.
func NewRecorder(tx TxRunner, clk clock.Clock) *Recorder {
	return &Recorder{tx: tx, clock: clk}
}

// Record inserta la entrada usando repo, normalmente el de la transacción en curso.
// Cualquier fallo se devuelve envuelto en domain.ErrPersistence.
func (r *Recorder) Record(ctx context.Context, repo repository.AuditLogRepository, e Entry) error {
	changes, err := Redact(e.Payload)
	if err != nil {
		return fmt.Errorf("%w: serializar cambios: %w", domain.ErrPersistence, err)
	}
	log := &entity.AuditLog{
		ID:         uuid.New().String(),
		Action:     e.Action,
		EntityType: e.Target.Type,
		ObjectID:   e.Target.ID,
		ObjectRepr: e.Target.Repr,
		Changes:    changes,
		IPAddress:  e.Meta.IP,
		UserAgent:  e.Meta.UserAgent,
		CreatedAt:  r.clock.Now(),
	}
	if uid := e.Principal.UserID(); uid != "" {
		log.UserID = &uid
	}
	companyID := e.Target.CompanyID
	if companyID == "" && e.Target.Type == entity.EntityCompany {
		companyID = e.Target.ID
	}
	if companyID != "" {
		log.CompanyID = &companyID
	}
	if err := repo.Insert(ctx, log); err != nil {
		return fmt.Errorf("%w: insertar auditoría: %w", domain.ErrPersistence, err)
	}
	return nil
}

// RunAudited ejecuta fn en una transacción y registra la entrada que devuelve en esa misma transacción.
// Si fn falla su error se devuelve tal cual; si falla la auditoría o el commit, ambas escrituras se
// deshacen y el error envuelve domain.ErrPersistence. fn puede devolver una entrada nil para no auditar.
func (r *Recorder) RunAudited(ctx context.Context, fn func(repos repository.TxRepos) (*Entry, error)) error {
	var fnErr error
	err := r.tx.Run(ctx, func(repos repository.TxRepos) error {
		entry, err := fn(repos)
		if err != nil {
			fnErr = err
			return err
		}
		if entry == nil {
			return nil
		}
		return r.Record(ctx, repos.AuditLogs, *entry)
	})
	if err == nil || fnErr != nil || errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
}

// Redact serializa payload a JSON y elimina los campos secretos.
// payload puede ser []byte / json.RawMessage con JSON ya serializado; nil produce "{}".
func Redact(payload any) ([]byte, error) {
	var raw []byte
	switch p := payload.(type) {
	case nil:
		return []byte("{}"), nil
	case json.RawMessage:
		raw = p
	case []byte:
		raw = p
	default:
		b, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("payload no es JSON válido")
	}

	var paths []string
	collectSecretPaths("", gjson.ParseBytes(raw), &paths)
	for _, p := range paths {
		var err error
		if raw, err = sjson.DeleteBytes(raw, p); err != nil {
			return nil, fmt.Errorf("eliminar %s: %w", p, err)
		}
	}
	return raw, nil
}

func collectSecretPaths(prefix string, v gjson.Result, out *[]string) {
	if !v.IsObject() && !v.IsArray() {
		return
	}
	i := 0
	v.ForEach(func(key, val gjson.Result) bool {
		var p string
		if v.IsArray() {
			p = joinPath(prefix, strconv.Itoa(i))
			i++
		} else {
			p = joinPath(prefix, escapeKey(key.String()))
			if lo.Contains(secretFields, strings.ToLower(key.String())) {
				*out = append(*out, p)
				return true
			}
		}
		collectSecretPaths(p, val, out)
		return true
	})
}

func joinPath(prefix, part string) string {
	if prefix == "" {
		return part
	}
	return prefix + "." + part
}

var keyEscaper = strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)

func escapeKey(k string) string {
	return keyEscaper.Replace(k)
}
