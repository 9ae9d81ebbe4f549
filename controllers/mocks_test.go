package controllers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/lifesure/backend/models"
	"github.com/lifesure/backend/store"
)

// Mocks implement the accessor interfaces with function fields; a nil field
// falls back to a harmless default.

type mockPolicyAccessor struct {
	CreateFunc  func(ctx context.Context, policy models.Policy) (bson.ObjectID, error)
	ListFunc    func(ctx context.Context) ([]models.Policy, error)
	GetByIDFunc func(ctx context.Context, id bson.ObjectID) (*models.Policy, error)
	UpdateFunc  func(ctx context.Context, id bson.ObjectID, fields bson.M) error
	DeleteFunc  func(ctx context.Context, id bson.ObjectID) error
}

func (m *mockPolicyAccessor) Create(ctx context.Context, policy models.Policy) (bson.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, policy)
	}
	return bson.NewObjectID(), nil
}

func (m *mockPolicyAccessor) List(ctx context.Context) ([]models.Policy, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPolicyAccessor) GetByID(ctx context.Context, id bson.ObjectID) (*models.Policy, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockPolicyAccessor) Update(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return nil
}

func (m *mockPolicyAccessor) Delete(ctx context.Context, id bson.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockUserAccessor struct {
	UpsertOnLoginFunc func(ctx context.Context, email, name, photoURL string) (bool, error)
	ListFunc          func(ctx context.Context) ([]models.User, error)
	UpdateRoleFunc    func(ctx context.Context, id bson.ObjectID, role models.Role) error
	DeleteFunc        func(ctx context.Context, id bson.ObjectID) error

	upsertCalls int
	roleCalls   int
}

func (m *mockUserAccessor) UpsertOnLogin(ctx context.Context, email, name, photoURL string) (bool, error) {
	m.upsertCalls++
	if m.UpsertOnLoginFunc != nil {
		return m.UpsertOnLoginFunc(ctx, email, name, photoURL)
	}
	return false, nil
}

func (m *mockUserAccessor) List(ctx context.Context) ([]models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserAccessor) UpdateRole(ctx context.Context, id bson.ObjectID, role models.Role) error {
	m.roleCalls++
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, id, role)
	}
	return nil
}

func (m *mockUserAccessor) Delete(ctx context.Context, id bson.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockBookingAccessor struct {
	CreateFunc            func(ctx context.Context, booking models.Booking) (bson.ObjectID, error)
	CheckAvailabilityFunc func(ctx context.Context, policyRef models.PolicyRef, email string) (bool, error)
	TopPoliciesFunc       func(ctx context.Context, limit int) ([]models.TopPolicy, error)
	AllWithPolicyFunc     func(ctx context.Context) ([]models.BookingWithPolicy, error)
	DetailForFunc         func(ctx context.Context, email string, policyRef models.PolicyRef) (*models.BookingWithPolicy, error)
	MyPoliciesFunc        func(ctx context.Context, email string) ([]models.BookingWithPolicy, error)
	ActiveClaimableFunc   func(ctx context.Context, email string) ([]models.ClaimableBooking, error)
	UpdateStatusFunc      func(ctx context.Context, id bson.ObjectID, status string, feedback *string) error
}

func (m *mockBookingAccessor) Create(ctx context.Context, booking models.Booking) (bson.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return bson.NewObjectID(), nil
}

func (m *mockBookingAccessor) CheckAvailability(ctx context.Context, policyRef models.PolicyRef, email string) (bool, error) {
	if m.CheckAvailabilityFunc != nil {
		return m.CheckAvailabilityFunc(ctx, policyRef, email)
	}
	return false, nil
}

func (m *mockBookingAccessor) TopPolicies(ctx context.Context, limit int) ([]models.TopPolicy, error) {
	if m.TopPoliciesFunc != nil {
		return m.TopPoliciesFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockBookingAccessor) AllWithPolicy(ctx context.Context) ([]models.BookingWithPolicy, error) {
	if m.AllWithPolicyFunc != nil {
		return m.AllWithPolicyFunc(ctx)
	}
	return nil, nil
}

func (m *mockBookingAccessor) DetailFor(ctx context.Context, email string, policyRef models.PolicyRef) (*models.BookingWithPolicy, error) {
	if m.DetailForFunc != nil {
		return m.DetailForFunc(ctx, email, policyRef)
	}
	return nil, store.ErrNotFound
}

func (m *mockBookingAccessor) MyPolicies(ctx context.Context, email string) ([]models.BookingWithPolicy, error) {
	if m.MyPoliciesFunc != nil {
		return m.MyPoliciesFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockBookingAccessor) ActiveClaimable(ctx context.Context, email string) ([]models.ClaimableBooking, error) {
	if m.ActiveClaimableFunc != nil {
		return m.ActiveClaimableFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockBookingAccessor) UpdateStatus(ctx context.Context, id bson.ObjectID, status string, feedback *string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, feedback)
	}
	return nil
}

type mockClaimAccessor struct {
	CreateFunc func(ctx context.Context, claim models.Claim) (bson.ObjectID, error)
}

func (m *mockClaimAccessor) Create(ctx context.Context, claim models.Claim) (bson.ObjectID, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, claim)
	}
	return bson.NewObjectID(), nil
}

type mockPaymentAccessor struct {
	FindBookingByRefFunc  func(ctx context.Context, ref models.PolicyRef) (*models.Booking, error)
	MarkBookingPaidFunc   func(ctx context.Context, ref models.PolicyRef, nextPaymentDate time.Time) error
	AppendTransactionFunc func(ctx context.Context, tx models.Transaction) (bson.ObjectID, error)
	ListTransactionsFunc  func(ctx context.Context) ([]models.Transaction, error)

	appended  []models.Transaction
	markCalls int
}

func (m *mockPaymentAccessor) FindBookingByRef(ctx context.Context, ref models.PolicyRef) (*models.Booking, error) {
	if m.FindBookingByRefFunc != nil {
		return m.FindBookingByRefFunc(ctx, ref)
	}
	return &models.Booking{BookingPolicyID: ref}, nil
}

func (m *mockPaymentAccessor) MarkBookingPaid(ctx context.Context, ref models.PolicyRef, nextPaymentDate time.Time) error {
	m.markCalls++
	if m.MarkBookingPaidFunc != nil {
		return m.MarkBookingPaidFunc(ctx, ref, nextPaymentDate)
	}
	return nil
}

func (m *mockPaymentAccessor) AppendTransaction(ctx context.Context, tx models.Transaction) (bson.ObjectID, error) {
	m.appended = append(m.appended, tx)
	if m.AppendTransactionFunc != nil {
		return m.AppendTransactionFunc(ctx, tx)
	}
	return bson.NewObjectID(), nil
}

func (m *mockPaymentAccessor) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	if m.ListTransactionsFunc != nil {
		return m.ListTransactionsFunc(ctx)
	}
	return m.appended, nil
}

type mockGateway struct {
	CreateIntentFunc func(ctx context.Context, amount float64) (string, error)
}

func (m *mockGateway) CreateIntent(ctx context.Context, amount float64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, amount)
	}
	return "pi_secret", nil
}
