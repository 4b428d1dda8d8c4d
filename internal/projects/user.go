package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/abhisek/circuitspace/internal/logger"
	"github.com/abhisek/circuitspace/internal/store"
	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a user project id is unknown.
var ErrProjectNotFound = errors.New("project not found")

// Status is the lifecycle state of a user project.
type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusPaused     Status = "paused"
)

// UserProject is a project saved to the user's library.
type UserProject struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	Tags          []string  `json:"tags"`
	Difficulty    int       `json:"difficulty"`
	Components    []string  `json:"components"`
	Code          string    `json:"code"`
	Status        Status    `json:"status"`
	EstimatedTime string    `json:"estimatedTime"`
	LearningGoals []string  `json:"learningGoals"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserProjectUpdate carries the fields to change; nil fields are left alone.
type UserProjectUpdate struct {
	Name        *string
	Description *string
	Code        *string
	Status      *Status
	Tags        []string
	Components  []string
}

// UserProjects is the user's saved project library, persisted as one JSON
// array under store.KeyUserProjects.
type UserProjects struct {
	mu       sync.Mutex
	kv       store.KV
	log      *logger.Logger
	now      func() time.Time
	projects []UserProject
}

// OpenUserProjects loads the library. Missing or malformed data starts empty.
func OpenUserProjects(ctx context.Context, kv store.KV, log *logger.Logger) *UserProjects {
	u := &UserProjects{kv: kv, log: logger.OrNop(log), now: time.Now}
	raw, ok, err := kv.Get(ctx, store.KeyUserProjects)
	switch {
	case err != nil:
		u.log.Warn("failed to read user projects", "error", err)
	case ok && raw != "":
		if err := json.Unmarshal([]byte(raw), &u.projects); err != nil {
			u.log.Warn("user projects are malformed, starting empty", "error", err)
			u.projects = nil
		}
	}
	return u
}

// Add stores p with a new id and timestamps and returns the stored copy.
func (u *UserProjects) Add(ctx context.Context, p UserProject) (UserProject, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = StatusInProgress
	}
	u.projects = append(u.projects, p)
	if err := u.saveLocked(ctx); err != nil {
		u.projects = u.projects[:len(u.projects)-1]
		return UserProject{}, err
	}
	return p, nil
}

// Update applies upd to the project with the given id.
func (u *UserProjects) Update(ctx context.Context, id string, upd UserProjectUpdate) (UserProject, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.indexLocked(id)
	if i < 0 {
		return UserProject{}, fmt.Errorf("update %q: %w", id, ErrProjectNotFound)
	}
	prev := u.projects[i]
	p := prev
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Code != nil {
		p.Code = *upd.Code
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.Tags != nil {
		p.Tags = slices.Clone(upd.Tags)
	}
	if upd.Components != nil {
		p.Components = slices.Clone(upd.Components)
	}
	p.UpdatedAt = u.now()
	u.projects[i] = p
	if err := u.saveLocked(ctx); err != nil {
		u.projects[i] = prev
		return UserProject{}, err
	}
	return p, nil
}

// Delete removes the project with the given id.
func (u *UserProjects) Delete(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", id, ErrProjectNotFound)
	}
	prev := slices.Clone(u.projects)
	u.projects = slices.Delete(u.projects, i, i+1)
	if err := u.saveLocked(ctx); err != nil {
		u.projects = prev
		return err
	}
	return nil
}

// Get returns the project with the given id.
func (u *UserProjects) Get(id string) (UserProject, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if i := u.indexLocked(id); i >= 0 {
		return u.projects[i], true
	}
	return UserProject{}, false
}

// List returns all projects in insertion order.
func (u *UserProjects) List() []UserProject {
	u.mu.Lock()
	defer u.mu.Unlock()
	return slices.Clone(u.projects)
}

// Clear removes every saved project.
func (u *UserProjects) Clear(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.projects = nil
	return u.kv.Delete(ctx, store.KeyUserProjects)
}

func (u *UserProjects) indexLocked(id string) int {
	return slices.IndexFunc(u.projects, func(p UserProject) bool { return p.ID == id })
}

func (u *UserProjects) saveLocked(ctx context.Context) error {
	b, err := json.Marshal(u.projects)
	if err != nil {
		return fmt.Errorf("encode user projects: %w", err)
	}
	if err := u.kv.Set(ctx, store.KeyUserProjects, string(b)); err != nil {
		return fmt.Errorf("save user projects: %w", err)
	}
	return nil
}
