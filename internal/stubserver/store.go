package stubserver

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/myurl/console/internal/core/domain"
)

var (
	errInvalidCredentials = errors.New("Invalid credentials")
	errUserExists         = errors.New("Email already registered")
	errUserNotFound       = errors.New("User not found")
	errLinkNotFound       = errors.New("Short code not found")
)

type userRecord struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         domain.Role
	CreatedAt    time.Time
}

type linkRecord struct {
	Code      string
	URL       string
	OwnerID   string
	Clicks    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// memoryData is the in-process dataset behind the stub backend. Echo serves
// handlers concurrently, so every access goes through the mutex.
type memoryData struct {
	mu    sync.Mutex
	users map[string]*userRecord // keyed by lowercase email
	links map[string]*linkRecord // keyed by code
}

func newMemoryData() *memoryData {
	return &memoryData{
		users: make(map[string]*userRecord),
		links: make(map[string]*linkRecord),
	}
}

func (d *memoryData) createUser(name, email, hash string, role domain.Role) (*userRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.users[email]; exists {
		return nil, errUserExists
	}
	u := &userRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	d.users[email] = u
	return u, nil
}

func (d *memoryData) userByEmail(email string) (*userRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	u, ok := d.users[email]
	if !ok {
		return nil, errInvalidCredentials
	}
	return u, nil
}

func (d *memoryData) listUsers() []*userRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	users := make([]*userRecord, 0, len(d.users))
	for _, u := range d.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.Before(users[j].CreatedAt) })
	return users
}

func (d *memoryData) deleteUser(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for email, u := range d.users {
		if u.ID == id {
			delete(d.users, email)
			return nil
		}
	}
	return errUserNotFound
}

func (d *memoryData) createLink(ownerID, url string, ttl time.Duration) *linkRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	l := &linkRecord{
		Code:      uuid.NewString()[:8],
		URL:       url,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if ttl > 0 {
		l.ExpiresAt = l.CreatedAt.Add(ttl)
	}
	d.links[l.Code] = l
	return l
}

func (d *memoryData) linksByOwner(ownerID string) []*linkRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	links := make([]*linkRecord, 0)
	for _, l := range d.links {
		if l.OwnerID == ownerID {
			links = append(links, l)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].CreatedAt.Before(links[j].CreatedAt) })
	return links
}

func (d *memoryData) deleteLink(ownerID, code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.links[code]
	if !ok || l.OwnerID != ownerID {
		return errLinkNotFound
	}
	delete(d.links, code)
	return nil
}

func (d *memoryData) analytics() (int64, []domain.TopURL) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var total int64
	top := make([]domain.TopURL, 0, len(d.links))
	for _, l := range d.links {
		total += l.Clicks
		top = append(top, domain.TopURL{Code: l.Code, Clicks: l.Clicks})
	}
	sort.Slice(top, func(i, j int) bool { return top[i].Clicks > top[j].Clicks })
	if len(top) > 10 {
		top = top[:10]
	}
	return total, top
}

// recordClicks bumps a link's click counter so analytics have data to show.
func (d *memoryData) recordClicks(code string, n int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l, ok := d.links[code]; ok {
		l.Clicks += n
	}
}
