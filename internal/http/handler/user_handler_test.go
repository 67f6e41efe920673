package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
	"github.com/taskvault/taskvault-api/internal/service"
)

type stubUserService struct {
	user    *domain.User
	users   []domain.User
	total   int64
	err     error
	gotID   uint
	gotUpd  service.UpdateUserInput
	gotPage repository.PageRequest
}

func (s *stubUserService) Get(id uint) (*domain.User, error) {
	s.gotID = id
	return s.user, s.err
}

func (s *stubUserService) Create(service.CreateUserInput) (*domain.User, error) {
	return s.user, s.err
}

func (s *stubUserService) Update(id uint, in service.UpdateUserInput) error {
	s.gotID = id
	s.gotUpd = in
	return s.err
}

func (s *stubUserService) Delete(id uint) error {
	s.gotID = id
	return s.err
}

func (s *stubUserService) List(req repository.PageRequest) ([]domain.User, int64, error) {
	s.gotPage = req
	return s.users, s.total, s.err
}

func newUserRouter(svc service.UserServiceInterface) http.Handler {
	h := NewUserHandler(svc)
	r := chi.NewRouter()
	r.Get("/getUser/{id}", h.Get)
	r.Post("/createUser", h.Create)
	r.Post("/updateUser/{id}", h.Update)
	r.Delete("/deleteUser/{id}", h.Delete)
	r.Get("/allUser", h.List)
	return r
}

func TestUserHandlerGet(t *testing.T) {
	t.Run("200 with user", func(t *testing.T) {
		stub := &stubUserService{user: &domain.User{ID: 7, FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}}
		router := newUserRouter(stub)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getUser/7", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.gotID != 7 {
			t.Fatalf("service got id %d, want 7", stub.gotID)
		}
		data := decodeEnvelope(t, rec)["data"].(map[string]any)
		if data["full_name"] != "Jane Doe" {
			t.Fatalf("full_name = %v, want computed name", data["full_name"])
		}
		if _, leaked := data["password_hash"]; leaked {
			t.Fatal("password hash must never be serialized")
		}
	})

	t.Run("404 on unknown id", func(t *testing.T) {
		router := newUserRouter(&stubUserService{err: repository.ErrUserNotFound})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getUser/404", nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("400 on non-numeric id", func(t *testing.T) {
		router := newUserRouter(&stubUserService{})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/getUser/abc", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestUserHandlerUpdate(t *testing.T) {
	t.Run("forwards only provided fields", func(t *testing.T) {
		stub := &stubUserService{}
		router := newUserRouter(stub)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/updateUser/7",
			strings.NewReader(`{"first_name":"Janet"}`)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.gotUpd.FirstName == nil || *stub.gotUpd.FirstName != "Janet" {
			t.Fatal("first name not forwarded")
		}
		if stub.gotUpd.Email != nil {
			t.Fatal("absent fields must stay nil")
		}
	})

	t.Run("400 on empty update", func(t *testing.T) {
		router := newUserRouter(&stubUserService{err: service.ErrMissingFields})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/updateUser/7", strings.NewReader(`{}`)))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestUserHandlerDelete(t *testing.T) {
	stub := &stubUserService{}
	router := newUserRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/deleteUser/3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.gotID != 3 {
		t.Fatalf("service got id %d, want 3", stub.gotID)
	}
}

func TestUserHandlerList(t *testing.T) {
	stub := &stubUserService{
		users: []domain.User{{ID: 1, Email: "a@example.com"}, {ID: 2, Email: "b@example.com"}},
		total: 5,
	}
	router := newUserRouter(stub)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/allUser?page=2&page_size=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.gotPage.Page != 2 || stub.gotPage.PageSize != 2 {
		t.Fatalf("page request = %+v", stub.gotPage)
	}
	data := decodeEnvelope(t, rec)["data"].(map[string]any)
	if data["total"] != float64(5) {
		t.Fatalf("total = %v, want 5", data["total"])
	}
}
