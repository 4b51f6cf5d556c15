// Package memory is the fixture-backed store. All entities live in maps for
// the process lifetime; writes mutate the maps and nothing survives a
// restart. The mutex only protects the maps against Fiber's concurrent
// handlers; there is no other coordination to do.
package memory

import (
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/woodcraft-ug/woodcraft-api/internal/domain/entity"
)

// Store implements every repository port over in-memory maps.
type Store struct {
	mu           sync.RWMutex
	products     map[string]*entity.Product
	woodProducts map[string]*entity.WoodProduct
	sales        map[string]*entity.Sale
	saleOrder    []string // insertion order of sale ids
	customers    map[string]*entity.Customer
	suppliers    map[string]*entity.Supplier
	users        map[string]*entity.User
}

// New builds a store seeded with the demo fixtures.
func New() *Store {
	s := &Store{
		products:     make(map[string]*entity.Product),
		woodProducts: make(map[string]*entity.WoodProduct),
		sales:        make(map[string]*entity.Sale),
		customers:    make(map[string]*entity.Customer),
		suppliers:    make(map[string]*entity.Supplier),
		users:        make(map[string]*entity.User),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	for _, p := range seedProducts() {
		s.products[p.ID] = p
	}
	for _, w := range seedWoodProducts() {
		s.woodProducts[w.ID] = w
	}
	for _, c := range seedCustomers() {
		s.customers[c.ID] = c
	}
	for _, sp := range seedSuppliers() {
		s.suppliers[sp.ID] = sp
	}
	for _, sale := range seedSales() {
		s.sales[sale.ID] = sale
		s.saleOrder = append(s.saleOrder, sale.ID)
	}
	s.seedUsers()
}

// seedUsers creates the manager and attendant demo accounts. Passwords come
// from SEED_MANAGER_PASSWORD / SEED_ATTENDANT_PASSWORD, with dev defaults.
func (s *Store) seedUsers() {
	managerPwd := envOr("SEED_MANAGER_PASSWORD", "manager123")
	attendantPwd := envOr("SEED_ATTENDANT_PASSWORD", "attendant123")
	if os.Getenv("SEED_MANAGER_PASSWORD") == "" || os.Getenv("SEED_ATTENDANT_PASSWORD") == "" {
		log.Warn().Msg("memory store: using default dev credentials, set SEED_MANAGER_PASSWORD and SEED_ATTENDANT_PASSWORD to override")
	}
	for _, u := range []struct {
		id, name, email, password, role string
	}{
		{"user-manager", "Grace Nakato", "grace@woodcraft.ug", managerPwd, entity.RoleManager},
		{"user-attendant", "Peter Okello", "peter@woodcraft.ug", attendantPwd, entity.RoleAttendant},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Str("email", u.email).Msg("memory store: hashing seed password")
		}
		s.users[u.id] = &entity.User{
			ID:           u.id,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
		}
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ── Products (showroom) ──────────────────────────────────────────────────────
// Each repository port is exposed through a view type: the Store cannot
// carry several method sets with the same names.

// Products returns the ProductRepository view of the store.
func (s *Store) Products() *ProductStore { return &ProductStore{s: s} }

// ProductStore adapts Store to repository.ProductRepository.
type ProductStore struct{ s *Store }

func (r *ProductStore) Create(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *ProductStore) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductStore) List() ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ProductStore) Update(p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *ProductStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

// ── Wood products (warehouse) ────────────────────────────────────────────────

// WoodProducts returns the WoodProductRepository view of the store.
func (s *Store) WoodProducts() *WoodProductStore { return &WoodProductStore{s: s} }

// WoodProductStore adapts Store to repository.WoodProductRepository.
type WoodProductStore struct{ s *Store }

func (w *WoodProductStore) Create(p *entity.WoodProduct) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	cp := *p
	w.s.woodProducts[p.ID] = &cp
	return nil
}

func (w *WoodProductStore) GetByID(id string) (*entity.WoodProduct, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()
	p, ok := w.s.woodProducts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (w *WoodProductStore) List() ([]*entity.WoodProduct, error) {
	w.s.mu.RLock()
	defer w.s.mu.RUnlock()
	out := make([]*entity.WoodProduct, 0, len(w.s.woodProducts))
	for _, p := range w.s.woodProducts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (w *WoodProductStore) Update(p *entity.WoodProduct) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	cp := *p
	w.s.woodProducts[p.ID] = &cp
	return nil
}

func (w *WoodProductStore) Delete(id string) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()
	delete(w.s.woodProducts, id)
	return nil
}

// ── Sales ────────────────────────────────────────────────────────────────────

// Sales returns the SaleRepository view of the store.
func (s *Store) Sales() *SaleStore { return &SaleStore{s: s} }

// SaleStore adapts Store to repository.SaleRepository.
type SaleStore struct{ s *Store }

func (r *SaleStore) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := cloneSale(sale)
	r.s.sales[sale.ID] = cp
	r.s.saleOrder = append(r.s.saleOrder, sale.ID)
	return nil
}

func (r *SaleStore) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return cloneSale(sale), nil
}

func (r *SaleStore) List() ([]*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(r.s.saleOrder))
	for _, id := range r.s.saleOrder {
		if sale, ok := r.s.sales[id]; ok {
			out = append(out, cloneSale(sale))
		}
	}
	return out, nil
}

func cloneSale(sale *entity.Sale) *entity.Sale {
	cp := *sale
	cp.Lines = make([]entity.SaleLine, len(sale.Lines))
	copy(cp.Lines, sale.Lines)
	return &cp
}

// ── Customers ────────────────────────────────────────────────────────────────

// Customers returns the CustomerRepository view of the store.
func (s *Store) Customers() *CustomerStore { return &CustomerStore{s: s} }

// CustomerStore adapts Store to repository.CustomerRepository.
type CustomerStore struct{ s *Store }

func (r *CustomerStore) Create(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *CustomerStore) GetByID(id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CustomerStore) GetByPhone(phone string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.customers {
		if c.Phone == phone {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *CustomerStore) List() ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CustomerStore) Update(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *CustomerStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.customers, id)
	return nil
}

// ── Suppliers ────────────────────────────────────────────────────────────────

// Suppliers returns the SupplierRepository view of the store.
func (s *Store) Suppliers() *SupplierStore { return &SupplierStore{s: s} }

// SupplierStore adapts Store to repository.SupplierRepository.
type SupplierStore struct{ s *Store }

func (r *SupplierStore) Create(sp *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[sp.ID] = cloneSupplier(sp)
	return nil
}

func (r *SupplierStore) GetByID(id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sp, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return cloneSupplier(sp), nil
}

func (r *SupplierStore) List() ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.s.suppliers))
	for _, sp := range r.s.suppliers {
		out = append(out, cloneSupplier(sp))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *SupplierStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.suppliers, id)
	return nil
}

func cloneSupplier(sp *entity.Supplier) *entity.Supplier {
	cp := *sp
	cp.Products = make([]string, len(sp.Products))
	copy(cp.Products, sp.Products)
	return &cp
}

// ── Users ────────────────────────────────────────────────────────────────────

// Users returns the UserRepository view of the store.
func (s *Store) Users() *UserStore { return &UserStore{s: s} }

// UserStore adapts Store to repository.UserRepository.
type UserStore struct{ s *Store }

func (r *UserStore) GetByID(id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserStore) FindByEmail(email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserStore) List() ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
