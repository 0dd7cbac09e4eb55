// seed genera el script SQL con los planes base (incluido el plan de prueba que se asigna
// al crear una empresa) y el superusuario inicial.
//
// Uso: SEED_ADMIN_PASSWORD=... go run ./cmd/seed [usuario] [email]
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Saas-api/pkg/slug"
)

// Espacio para IDs deterministas: volver a generar el script no cambia las claves.
var seedNamespace = uuid.MustParse("6f1c2a9e-3b7d-4f0a-9c55-2d8e1b4a7c10")

type planSeed struct {
	Name       string
	Price      decimal.Decimal
	Currency   string
	MaxUsers   int
	MaxStorage int
	Features   map[string]any
	IsTrial    bool
}

var plans = []planSeed{
	{Name: "Prueba", Price: decimal.Zero, Currency: "TRY", MaxUsers: 3, MaxStorage: 512, Features: map[string]any{"reports": false}, IsTrial: true},
	{Name: "Básico", Price: decimal.RequireFromString("499.90"), Currency: "TRY", MaxUsers: 10, MaxStorage: 2048, Features: map[string]any{"reports": true}},
	{Name: "Profesional", Price: decimal.RequireFromString("1299.90"), Currency: "TRY", MaxUsers: 50, MaxStorage: 10240, Features: map[string]any{"reports": true, "api_access": true}},
}

type adminSeed struct {
	Username string
	Email    string
	Password string
}

func main() {
	admin := adminSeed{Username: "admin", Email: "admin@localhost", Password: os.Getenv("SEED_ADMIN_PASSWORD")}
	if len(os.Args) > 1 {
		admin.Username = os.Args[1]
	}
	if len(os.Args) > 2 {
		admin.Email = os.Args[2]
	}
	if admin.Password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_PASSWORD es obligatorio")
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSeed(out, plans, admin); err != nil {
		fmt.Fprintf(os.Stderr, "Generar seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d planes, superusuario %q\n", outPath, len(plans), admin.Username)
}

func writeSeed(w io.Writer, plans []planSeed, admin adminSeed) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de contraseña: %w", err)
	}

	fmt.Fprintln(w, "-- Planes base y superusuario inicial")
	fmt.Fprintln(w, "-- Generado con cmd/seed")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- 1. Planes")
	for _, p := range plans {
		features, err := json.Marshal(p.Features)
		if err != nil {
			return fmt.Errorf("features de %s: %w", p.Name, err)
		}
		planSlug := slug.Make(p.Name)
		fmt.Fprintln(w, "INSERT INTO plans (id, name, slug, price, currency, max_users, max_storage, features, is_trial, is_active)")
		fmt.Fprintf(w, "VALUES ('%s', '%s', '%s', %s, '%s', %d, %d, '%s', %t, TRUE)\n",
			seedID("plan", planSlug), escapeSQL(p.Name), planSlug, p.Price.StringFixed(2), p.Currency,
			p.MaxUsers, p.MaxStorage, escapeSQL(string(features)), p.IsTrial)
		fmt.Fprintln(w, "ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price, features = EXCLUDED.features;")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "-- 2. Superusuario")
	fmt.Fprintln(w, "INSERT INTO users (id, username, email, password_hash, is_active, is_superuser, is_staff)")
	fmt.Fprintf(w, "VALUES ('%s', '%s', '%s', '%s', TRUE, TRUE, TRUE)\n",
		seedID("user", admin.Username), escapeSQL(admin.Username), escapeSQL(admin.Email), hash)
	fmt.Fprintln(w, "ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash;")
	return nil
}

func seedID(kind, key string) string {
	return uuid.NewSHA1(seedNamespace, []byte(kind+":"+key)).String()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
