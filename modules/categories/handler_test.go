package categories_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/partstock/modules/auth"
	"github.com/dmitrymomot/partstock/modules/categories"
	"github.com/dmitrymomot/partstock/modules/users"
)

type fakeStorage struct {
	mu         sync.Mutex
	categories map[bson.ObjectID]*categories.Category
}

func newFakeStorage(seed ...*categories.Category) *fakeStorage {
	s := &fakeStorage{categories: make(map[bson.ObjectID]*categories.Category)}
	for _, c := range seed {
		s.categories[c.ID] = c
	}
	return s
}

func (f *fakeStorage) List(_ context.Context) ([]categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]categories.Category, 0, len(f.categories))
	for _, c := range f.categories {
		all = append(all, *c)
	}
	return all, nil
}

func (f *fakeStorage) ListByParent(_ context.Context, parentID string) ([]categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var subs []categories.Category
	for _, c := range f.categories {
		if c.Parent == parentID {
			subs = append(subs, *c)
		}
	}
	return subs, nil
}

func (f *fakeStorage) FindByID(_ context.Context, id bson.ObjectID) (*categories.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok {
		return nil, categories.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeStorage) Create(_ context.Context, category *categories.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	category.ID = bson.NewObjectID()
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeStorage) Update(_ context.Context, category *categories.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[category.ID]; !ok {
		return categories.ErrNotFound
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return categories.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

func newServer(t *testing.T, storage categories.Storage) *httptest.Server {
	t.Helper()
	gate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.Claims{User: auth.UserClaims{
				ID:     bson.NewObjectID().Hex(),
				Rights: users.Rights{CanModifyParts: true, CanDeleteParts: true},
			}}
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
	h := categories.NewHandler(storage)
	srv := httptest.NewServer(h.Routes(gate, auth.CanModifyParts, auth.CanDeleteParts))
	t.Cleanup(srv.Close)
	return srv
}

func TestCategoriesSubcategories(t *testing.T) {
	t.Parallel()

	parent := &categories.Category{ID: bson.NewObjectID(), Name: "Transistors"}
	child := &categories.Category{ID: bson.NewObjectID(), Name: "NPN", Parent: parent.ID.Hex()}
	grandchild := &categories.Category{ID: bson.NewObjectID(), Name: "Darlington", Parent: child.ID.Hex()}
	srv := newServer(t, newFakeStorage(parent, child, grandchild))

	t.Run("lists direct children only", func(t *testing.T) {
		t.Parallel()
		resp, err := http.Get(srv.URL + "/sub/" + parent.ID.Hex())
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var subs []categories.Category
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&subs))
		require.Len(t, subs, 1)
		assert.Equal(t, "NPN", subs[0].Name)
	})

	t.Run("leaf category has no children", func(t *testing.T) {
		t.Parallel()
		resp, err := http.Get(srv.URL + "/sub/" + grandchild.ID.Hex())
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var subs []categories.Category
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&subs))
		assert.Empty(t, subs)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		t.Parallel()
		resp, err := http.Get(srv.URL + "/sub/not-hex")
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
