package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"pet-adoption/internal/database"
	"pet-adoption/internal/model"
	"pet-adoption/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	randRead = rand.Read
	jsonMarshal = json.Marshal
	jsonUnmarshal = json.Unmarshal
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims

	withTx = database.WithTx
	reservePet = store.ReservePet
	releasePet = store.ReleasePet
	createOrder = store.CreateOrder
	getOrderByID = store.GetOrderByID
	listOrders = store.ListOrders
	updateOrderStatus = store.UpdateOrderStatus
	getPetByID = store.GetPetByID
	getPetImage = store.GetPetImage
	countAdmins = store.CountAdmins
	createUser = store.CreateUser
}

// memStore 以記憶體模擬 store 的條件式更新語意。
// 每個寫入都在所屬交易記下還原動作，rollback 時反向執行。
// 這只驗證 service 的流程；資料庫層的原子性靠 store 的條件式 SQL (見 store/pet_test.go)。
type memStore struct {
	mu     sync.Mutex
	pets   map[string]*model.Pet
	orders map[string]*model.Order
	seq    int
	undo   map[database.Querier][]func()
}

func newMemStore(pets ...model.Pet) *memStore {
	m := &memStore{
		pets:   map[string]*model.Pet{},
		orders: map[string]*model.Order{},
		undo:   map[database.Querier][]func(){},
	}
	for i := range pets {
		p := pets[i]
		m.pets[p.ID] = &p
	}
	return m
}

func (m *memStore) install(t *testing.T) {
	t.Helper()
	t.Cleanup(restoreGlobals)

	reservePet = func(_ context.Context, q database.Querier, petID string) (*model.Pet, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		p, ok := m.pets[petID]
		if !ok || !p.Available {
			return nil, fmt.Errorf("ReservePet: %w", store.ErrNotFound)
		}
		p.Available = false
		m.undo[q] = append(m.undo[q], func() { p.Available = true })
		cp := *p
		return &cp, nil
	}
	releasePet = func(_ context.Context, q database.Querier, petID string) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		p, ok := m.pets[petID]
		if !ok {
			return fmt.Errorf("ReleasePet: %w", store.ErrNotFound)
		}
		prev := p.Available
		p.Available = true
		m.undo[q] = append(m.undo[q], func() { p.Available = prev })
		return nil
	}
	createOrder = func(_ context.Context, q database.Querier, o *model.Order) (*model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.seq++
		o.ID = fmt.Sprintf("order-%d", m.seq)
		o.CreatedAt = time.Now()
		cp := *o
		m.orders[o.ID] = &cp
		id := o.ID
		m.undo[q] = append(m.undo[q], func() { delete(m.orders, id) })
		return o, nil
	}
	getOrderByID = func(_ context.Context, _ database.Querier, id string) (*model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		o, ok := m.orders[id]
		if !ok {
			return nil, fmt.Errorf("GetOrderByID: %w", store.ErrNotFound)
		}
		cp := *o
		return &cp, nil
	}
	updateOrderStatus = func(_ context.Context, q database.Querier, id string, from, to model.OrderStatus, at time.Time) (*model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		o, ok := m.orders[id]
		if !ok || o.Status != from {
			return nil, fmt.Errorf("UpdateOrderStatus: %w", store.ErrNotFound)
		}
		prevStatus, prevAt := o.Status, o.UpdatedAt
		m.undo[q] = append(m.undo[q], func() { o.Status, o.UpdatedAt = prevStatus, prevAt })
		o.Status = to
		o.UpdatedAt = &at
		cp := *o
		return &cp, nil
	}
	listOrders = func(_ context.Context, _ database.Querier, f store.OrderFilter) ([]model.Order, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		out := make([]model.Order, 0)
		for _, o := range m.orders {
			if f.UserID != "" && o.UserID != f.UserID {
				continue
			}
			if f.Status != "" && o.Status != f.Status {
				continue
			}
			out = append(out, *o)
		}
		return out, nil
	}
}

func (m *memStore) pet(id string) model.Pet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.pets[id]
}

// db 回傳的 FakeDB 每次 Begin 開新交易；commit 丟棄還原紀錄，rollback 反向執行
func (m *memStore) db(onBegin func(*database.FakeTx)) *database.FakeDB {
	return &database.FakeDB{
		BeginFn: func(context.Context) (pgx.Tx, error) {
			tx := &database.FakeTx{}
			tx.CommitFn = func(context.Context) error {
				m.mu.Lock()
				defer m.mu.Unlock()
				delete(m.undo, tx)
				return nil
			}
			tx.RollbackFn = func(context.Context) {
				m.mu.Lock()
				defer m.mu.Unlock()
				steps := m.undo[tx]
				for i := len(steps) - 1; i >= 0; i-- {
					steps[i]()
				}
				delete(m.undo, tx)
			}
			if onBegin != nil {
				onBegin(tx)
			}
			return tx, nil
		},
	}
}

// txDB 每次 Begin 都回傳新的 FakeTx
func txDB() *database.FakeDB {
	return &database.FakeDB{
		BeginFn: func(context.Context) (pgx.Tx, error) { return &database.FakeTx{}, nil },
	}
}
