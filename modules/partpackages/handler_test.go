package partpackages_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/partstock/modules/auth"
	"github.com/dmitrymomot/partstock/modules/partpackages"
	"github.com/dmitrymomot/partstock/modules/users"
)

type fakeStorage struct {
	mu       sync.Mutex
	packages map[bson.ObjectID]*partpackages.PartPackage
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{packages: make(map[bson.ObjectID]*partpackages.PartPackage)}
}

func (f *fakeStorage) List(_ context.Context) ([]partpackages.PartPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]partpackages.PartPackage, 0, len(f.packages))
	for _, p := range f.packages {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakeStorage) FindByID(_ context.Context, id bson.ObjectID) (*partpackages.PartPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.packages[id]
	if !ok {
		return nil, partpackages.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeStorage) FindByName(_ context.Context, name string) (*partpackages.PartPackage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.packages {
		if p.Name == name {
			copied := *p
			return &copied, nil
		}
	}
	return nil, partpackages.ErrNotFound
}

func (f *fakeStorage) Create(_ context.Context, pkg *partpackages.PartPackage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	pkg.ID = bson.NewObjectID()
	copied := *pkg
	f.packages[pkg.ID] = &copied
	return nil
}

func (f *fakeStorage) Update(_ context.Context, pkg *partpackages.PartPackage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.packages[pkg.ID]; !ok {
		return partpackages.ErrNotFound
	}
	copied := *pkg
	f.packages[pkg.ID] = &copied
	return nil
}

func (f *fakeStorage) Delete(_ context.Context, id bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.packages[id]; !ok {
		return partpackages.ErrNotFound
	}
	delete(f.packages, id)
	return nil
}

func newServer(t *testing.T) *httptest.Server {
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
	h := partpackages.NewHandler(newFakeStorage())
	srv := httptest.NewServer(h.Routes(gate, auth.CanModifyParts, auth.CanDeleteParts))
	t.Cleanup(srv.Close)
	return srv
}

func TestPackagesTypes(t *testing.T) {
	t.Parallel()
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/types")
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var types []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&types))
	assert.Equal(t, []string{partpackages.TypeSMD, partpackages.TypeTHT}, types)
}

func TestPackagesCreate(t *testing.T) {
	t.Parallel()

	post := func(t *testing.T, url, body string) *http.Response {
		t.Helper()
		resp, err := http.Post(url, "application/json", strings.NewReader(body))
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	t.Run("accepts known mounting types", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t)

		resp := post(t, srv.URL+"/", `{"name":"SOT-23","type":"SMD"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp = post(t, srv.URL+"/", `{"name":"DIP-8","type":"THT"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("rejects unknown mounting type", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t)

		resp := post(t, srv.URL+"/", `{"name":"SOT-23","type":"BGA-ISH"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("names are unique", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t)

		resp := post(t, srv.URL+"/", `{"name":"SOT-23","type":"SMD"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = post(t, srv.URL+"/", `{"name":"SOT-23","type":"THT"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}
