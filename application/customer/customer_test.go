package customer_test

import (
	"context"
	"errors"
	"testing"

	appcustomer "github.com/GustavoWillian7/ecommerce-engine/application/customer"
	"github.com/GustavoWillian7/ecommerce-engine/constant"
	customermocks "github.com/GustavoWillian7/ecommerce-engine/mocks/repository/customer"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	cerr "github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"
)

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestCustomerApp_RegisterIndividual(t *testing.T) {
	req := &model.RegisterIndividualRequest{
		Name:    "Ana Souza",
		Email:   "ana@example.com",
		Address: "Rua A, 1",
		TaxID:   "12345678901",
	}
	tests := []struct {
		name     string
		req      *model.RegisterIndividualRequest
		mockCall func(m *customermocks.CustomerRepository)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new individual",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, nil).Once()
				m.On("TaxIDExists", mock.Anything, constant.CustomerKindIndividual, "12345678901").Return(false, nil).Once()
				m.On("CreateIndividual", mock.Anything, mock.MatchedBy(func(e *model.CustomerEntity) bool {
					return e.Name == "Ana Souza" && e.Email == "ana@example.com"
				}), &model.IndividualDetail{TaxID: "12345678901"}).Return(uint64(1), nil).Once()
			},
			wantID: 1,
		},
		{
			name: "error: email already registered as individual",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "ana@example.com").Return(&model.CustomerEntity{
					ID: 9, Email: "ana@example.com", Kind: constant.CustomerKindIndividual,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateIdentifier,
		},
		{
			name: "error: email already registered as organization",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "ana@example.com").Return(&model.CustomerEntity{
					ID: 9, Email: "ana@example.com", Kind: constant.CustomerKindOrganization,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidSpecializationChange,
		},
		{
			name: "error: tax id already taken",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, nil).Once()
				m.On("TaxIDExists", mock.Anything, constant.CustomerKindIndividual, "12345678901").Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateIdentifier,
		},
		{
			name: "error: duplicate key race on insert",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, nil).Once()
				m.On("TaxIDExists", mock.Anything, constant.CustomerKindIndividual, "12345678901").Return(false, nil).Once()
				m.On("CreateIndividual", mock.Anything, mock.Anything, mock.Anything).
					Return(uint64(0), &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateIdentifier,
		},
		{
			name: "error: repository failure",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "ana@example.com").Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := customermocks.NewCustomerRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appcustomer.NewCustomerApp(repo)

			got, err := app.RegisterIndividual(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterIndividual() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.CustomerID != tt.wantID {
				t.Fatalf("RegisterIndividual() CustomerID = %v, want %v", got.CustomerID, tt.wantID)
			}
			if got.Kind != constant.CustomerKindIndividual {
				t.Fatalf("RegisterIndividual() Kind = %v, want %v", got.Kind, constant.CustomerKindIndividual)
			}
		})
	}
}

func TestCustomerApp_RegisterOrganization(t *testing.T) {
	req := &model.RegisterOrganizationRequest{
		Name:      "Acme",
		Email:     "contact@acme.com",
		Address:   "Av B, 22",
		TaxID:     "12345678000199",
		LegalName: "Acme Ltda",
	}
	tests := []struct {
		name     string
		req      *model.RegisterOrganizationRequest
		mockCall func(m *customermocks.CustomerRepository)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new organization",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "contact@acme.com").Return(nil, nil).Once()
				m.On("TaxIDExists", mock.Anything, constant.CustomerKindOrganization, "12345678000199").Return(false, nil).Once()
				m.On("CreateOrganization", mock.Anything, mock.Anything, &model.OrganizationDetail{
					TaxID: "12345678000199", LegalName: "Acme Ltda",
				}).Return(uint64(2), nil).Once()
			},
			wantID: 2,
		},
		{
			name: "error: email held by an individual",
			req:  req,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByEmail", mock.Anything, "contact@acme.com").Return(&model.CustomerEntity{
					ID: 9, Email: "contact@acme.com", Kind: constant.CustomerKindIndividual,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidSpecializationChange,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := customermocks.NewCustomerRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appcustomer.NewCustomerApp(repo)

			got, err := app.RegisterOrganization(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterOrganization() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.CustomerID != tt.wantID {
				t.Fatalf("RegisterOrganization() CustomerID = %v, want %v", got.CustomerID, tt.wantID)
			}
			if got.Kind != constant.CustomerKindOrganization {
				t.Fatalf("RegisterOrganization() Kind = %v, want %v", got.Kind, constant.CustomerKindOrganization)
			}
		})
	}
}

func TestCustomerApp_GetCustomer(t *testing.T) {
	tests := []struct {
		name     string
		id       uint64
		mockCall func(m *customermocks.CustomerRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: individual with detail",
			id:   1,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByID", mock.Anything, uint64(1)).Return(&model.Customer{
					CustomerEntity: model.CustomerEntity{ID: 1, Kind: constant.CustomerKindIndividual},
					Individual:     &model.IndividualDetail{CustomerID: 1, TaxID: "12345678901"},
				}, nil).Once()
			},
		},
		{
			name: "error: not found",
			id:   999,
			mockCall: func(m *customermocks.CustomerRepository) {
				m.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := customermocks.NewCustomerRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appcustomer.NewCustomerApp(repo)

			got, err := app.GetCustomer(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetCustomer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID != tt.id {
				t.Fatalf("GetCustomer() ID = %v, want %v", got.ID, tt.id)
			}
		})
	}
}
