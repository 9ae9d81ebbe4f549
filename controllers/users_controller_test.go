package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lifesure/backend/models"
	"github.com/lifesure/backend/store"
)

func userRouter(users *mockUserAccessor) *gin.Engine {
	r := gin.New()
	r.POST("/users", UpsertUser(users))
	r.PATCH("/users/:id/role", UpdateUserRole(users))
	r.DELETE("/users/:id", DeleteUser(users))
	return r
}

func TestUpsertUserNormalizesEmailAndReportsCreated(t *testing.T) {
	var gotEmail string
	users := &mockUserAccessor{
		UpsertOnLoginFunc: func(ctx context.Context, email, name, photoURL string) (bool, error) {
			gotEmail = email
			return true, nil
		},
	}
	r := userRouter(users)

	w := performRequest(r, http.MethodPost, "/users", gin.H{
		"email": "  Jane@Example.COM ",
		"name":  "Jane",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}
	if gotEmail != "jane@example.com" {
		t.Errorf("upserted email = %q, want normalized", gotEmail)
	}
}

func TestUpsertUserSecondLoginIsOK(t *testing.T) {
	users := &mockUserAccessor{
		UpsertOnLoginFunc: func(ctx context.Context, email, name, photoURL string) (bool, error) {
			return false, nil
		},
	}
	r := userRouter(users)

	w := performRequest(r, http.MethodPost, "/users", gin.H{"email": "jane@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if users.upsertCalls != 1 {
		t.Errorf("upsert calls = %d, want 1", users.upsertCalls)
	}
}

func TestUpsertUserRejectsMissingEmail(t *testing.T) {
	users := &mockUserAccessor{}
	r := userRouter(users)

	w := performRequest(r, http.MethodPost, "/users", gin.H{"name": "no email"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if users.upsertCalls != 0 {
		t.Errorf("store touched on invalid body")
	}
}

func TestUpdateUserRoleRejectsUnknownRoleBeforeStore(t *testing.T) {
	users := &mockUserAccessor{}
	r := userRouter(users)

	id := bson.NewObjectID().Hex()
	w := performRequest(r, http.MethodPatch, "/users/"+id+"/role", gin.H{"role": "superuser"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if users.roleCalls != 0 {
		t.Errorf("store touched for invalid role")
	}
}

func TestUpdateUserRoleAcceptsEachValidRole(t *testing.T) {
	for _, role := range []string{"admin", "Agent", "CUSTOMER"} {
		var got models.Role
		users := &mockUserAccessor{
			UpdateRoleFunc: func(ctx context.Context, id bson.ObjectID, r models.Role) error {
				got = r
				return nil
			},
		}
		r := userRouter(users)

		id := bson.NewObjectID().Hex()
		w := performRequest(r, http.MethodPatch, "/users/"+id+"/role", gin.H{"role": role})

		if w.Code != http.StatusOK {
			t.Fatalf("role %q: status = %d, want %d", role, w.Code, http.StatusOK)
		}
		if !models.ValidRole(got) {
			t.Errorf("role %q: stored role %q is not valid", role, got)
		}
	}
}

func TestUpdateUserRoleDistinguishesNotFoundFromUnchanged(t *testing.T) {
	id := bson.NewObjectID().Hex()

	users := &mockUserAccessor{
		UpdateRoleFunc: func(ctx context.Context, id bson.ObjectID, role models.Role) error {
			return store.ErrNotFound
		},
	}
	w := performRequest(userRouter(users), http.MethodPatch, "/users/"+id+"/role", gin.H{"role": "agent"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("not found: status = %d, want %d", w.Code, http.StatusNotFound)
	}

	users = &mockUserAccessor{
		UpdateRoleFunc: func(ctx context.Context, id bson.ObjectID, role models.Role) error {
			return store.ErrUnchanged
		},
	}
	w = performRequest(userRouter(users), http.MethodPatch, "/users/"+id+"/role", gin.H{"role": "agent"})
	if w.Code != http.StatusOK {
		t.Fatalf("unchanged: status = %d, want %d", w.Code, http.StatusOK)
	}
	if body := decodeBody(t, w); body["changed"] != false {
		t.Errorf("unchanged: changed = %v, want false", body["changed"])
	}
}

func TestDeleteUserValidatesIDBeforeStore(t *testing.T) {
	deleted := false
	users := &mockUserAccessor{
		DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
			deleted = true
			return nil
		},
	}
	r := userRouter(users)

	w := performRequest(r, http.MethodDelete, "/users/not-a-hex-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if deleted {
		t.Errorf("store touched for malformed id")
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	users := &mockUserAccessor{
		DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
			return store.ErrNotFound
		},
	}
	r := userRouter(users)

	w := performRequest(r, http.MethodDelete, "/users/"+bson.NewObjectID().Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
