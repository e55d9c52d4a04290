package services

import (
	"sync"

	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes. The stock fake guards its map with a mutex so
// the concurrency tests exercise the same all-or-nothing decrement contract
// the SQL implementation gives.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byID: map[uint]*domain.User{}}
}

func (r *fakeUserRepo) CreateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindUserByID(userID uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) SaveUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) CountByRole(role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.byID {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(to, subject, htmlBody string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return true
}

func (m *fakeMailer) all() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

type fakeProductRepo struct {
	mu             sync.Mutex
	nextID         uint
	byID           map[uint]*domain.Product
	decrementCalls int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, byID: map[uint]*domain.Product{}}
}

func (r *fakeProductRepo) add(p domain.Product) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	cp := p
	r.byID[p.ID] = &cp
	return &cp
}

func (r *fakeProductRepo) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	cp := *product
	r.byID[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Search(category, search string, limit, offset int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, p := range r.byID {
		if category != "" && p.Category != category {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Save(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.byID[product.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(id uint, qty int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decrementCalls++
	p, ok := r.byID[id]
	if !ok || p.Stock < qty {
		return 0, repository.ErrStockConflict
	}
	p.Stock -= qty
	return p.Stock, nil
}

func (r *fakeProductRepo) IncrementStock(id uint, qty int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	p.Stock += qty
	return p.Stock, nil
}

func (r *fakeProductRepo) AddReview(review *domain.Review, newRating float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[review.ProductID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Reviews = append(p.Reviews, *review)
	p.Rating = newRating
	return nil
}

func (r *fakeProductRepo) stock(id uint) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[id]; ok {
		return p.Stock
	}
	return -1
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, byID: map[uint]*domain.Order{}}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = r.nextID
	r.nextID++
	cp := *order
	r.byID[order.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(id uint) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) FindByUser(userID uint) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.byID {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAll() ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.byID {
		out = append(out, *o)
	}
	return out, nil
}

func (r *fakeOrderRepo) SaveOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	r.byID[order.ID] = &cp
	return nil
}

type fakeCouponRepo struct {
	mu     sync.Mutex
	nextID uint
	byCode map[string]*domain.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{nextID: 1, byCode: map[string]*domain.Coupon{}}
}

func (r *fakeCouponRepo) Create(coupon *domain.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon.ID = r.nextID
	r.nextID++
	cp := *coupon
	r.byCode[coupon.Code] = &cp
	return nil
}

func (r *fakeCouponRepo) FindByCode(code string) (*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCouponRepo) FindByID(id uint) (*domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.byCode {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCouponRepo) List() ([]domain.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Coupon
	for _, c := range r.byCode {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCouponRepo) Save(coupon *domain.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *coupon
	r.byCode[coupon.Code] = &cp
	return nil
}

type fakeSettingRepo struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: map[string]string{}}
}

func (r *fakeSettingRepo) Get(key string) (*domain.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	if !ok {
		return nil, nil
	}
	return &domain.Setting{Key: key, Value: v}, nil
}

func (r *fakeSettingRepo) Upsert(key, value string) (*domain.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return &domain.Setting{Key: key, Value: value}, nil
}

type fakeProducer struct {
	mu       sync.Mutex
	messages []struct{ Key, Value string }
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, struct{ Key, Value string }{string(key), string(value)})
	return nil
}

func (p *fakeProducer) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, m := range p.messages {
		out = append(out, m.Key)
	}
	return out
}
