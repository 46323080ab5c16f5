package checkout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orderdesk/go-order-intake/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock Order Creator ---

type MockOrderCreator struct {
	IDs []string
	Err error

	calls        int
	lastBaskets  []models.Basket
	lastSellerID uint
	lastLabel    string
}

func (m *MockOrderCreator) CreateOrders(baskets []models.Basket, sellerID uint, label string) ([]string, error) {
	m.calls++
	m.lastBaskets = baskets
	m.lastSellerID = sellerID
	m.lastLabel = label
	if m.Err != nil {
		return nil, m.Err
	}
	return m.IDs, nil
}

// --- Tests ---

func TestHandleCheckout(t *testing.T) {
	validBody := `{
		"baskets":[
			{"supplierId":7,"clientId":42,"items":[{"productId":1,"code":"ABC123","quantity":2,"grossPrice":"10","unitPrice":"10","total":"20","supplierId":7}],"total":"20"},
			{"supplierId":9,"clientId":42,"items":[{"productId":3,"code":"GHI789","quantity":1,"grossPrice":"5","unitPrice":"4","total":"4","supplierId":9,"isPromo":true}],"total":"4"}
		],
		"sellerId":11,
		"sellerLabel":"PED A"
	}`

	testCases := []struct {
		name               string
		requestBody        string
		mockSetup          func() *MockOrderCreator
		expectedStatusCode int
		checkResponse      func(t *testing.T, rec *httptest.ResponseRecorder)
		checkCreatorCall   func(t *testing.T, creator *MockOrderCreator)
	}{
		{
			name:        "Success returns one identifier per basket",
			requestBody: validBody,
			mockSetup: func() *MockOrderCreator {
				return &MockOrderCreator{IDs: []string{"PEDA000101", "PEDA000102"}}
			},
			expectedStatusCode: http.StatusCreated,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp Response
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, []string{"PEDA000101", "PEDA000102"}, resp.CreatedOrderIDs)
			},
			checkCreatorCall: func(t *testing.T, creator *MockOrderCreator) {
				assert.Equal(t, 1, creator.calls)
				assert.Len(t, creator.lastBaskets, 2)
				assert.Equal(t, uint(11), creator.lastSellerID)
				assert.Equal(t, "PED A", creator.lastLabel)
			},
		},
		{
			name:        "Missing baskets rejected",
			requestBody: `{"baskets":[],"sellerId":11,"sellerLabel":"PED"}`,
			mockSetup: func() *MockOrderCreator {
				return &MockOrderCreator{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkCreatorCall: func(t *testing.T, creator *MockOrderCreator) {
				assert.Equal(t, 0, creator.calls, "nothing may be attempted on invalid input")
			},
		},
		{
			name:        "Basket without items rejected",
			requestBody: `{"baskets":[{"supplierId":7,"clientId":42,"items":[]}],"sellerId":11,"sellerLabel":"PED"}`,
			mockSetup: func() *MockOrderCreator {
				return &MockOrderCreator{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkCreatorCall: func(t *testing.T, creator *MockOrderCreator) {
				assert.Equal(t, 0, creator.calls)
			},
		},
		{
			name:        "Missing sellerId rejected",
			requestBody: `{"baskets":[{"supplierId":7,"items":[{"code":"ABC123","quantity":1}]}],"sellerLabel":"PED"}`,
			mockSetup: func() *MockOrderCreator {
				return &MockOrderCreator{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkCreatorCall: func(t *testing.T, creator *MockOrderCreator) {
				assert.Equal(t, 0, creator.calls)
			},
		},
		{
			name:        "Blank sellerLabel rejected",
			requestBody: `{"baskets":[{"supplierId":7,"items":[{"code":"ABC123","quantity":1}]}],"sellerId":11,"sellerLabel":"   "}`,
			mockSetup: func() *MockOrderCreator {
				return &MockOrderCreator{}
			},
			expectedStatusCode: http.StatusBadRequest,
			checkCreatorCall: func(t *testing.T, creator *MockOrderCreator) {
				assert.Equal(t, 0, creator.calls)
			},
		},
		{
			name:        "Invalid JSON rejected",
			requestBody: `{not json`,
			mockSetup: func() *MockOrderCreator {
				return &MockOrderCreator{}
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "Creator failure surfaces the error verbatim and no ids",
			requestBody: validBody,
			mockSetup: func() *MockOrderCreator {
				return &MockOrderCreator{Err: errors.New("nextval order_number_seq: sequence exhausted")}
			},
			expectedStatusCode: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "sequence exhausted")
				assert.NotContains(t, rec.Body.String(), "createdOrderIds")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			creator := tc.mockSetup()
			handler := NewCheckoutHandler(creator)
			req := httptest.NewRequest("POST", "/checkout", strings.NewReader(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			// Act
			handler.HandleCheckout(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)

			if tc.checkResponse != nil {
				tc.checkResponse(t, rec)
			}

			if tc.checkCreatorCall != nil {
				tc.checkCreatorCall(t, creator)
			}
		})
	}
}
