package job_offers_get_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/job_offers_get"
	"marketplace/internal/pkg/middlewares/actor"
	"marketplace/internal/service/lifecycle"
)

type mock struct {
	*MockService
	*MockhandlerLogger
}

func newMock(ctrl *gomock.Controller) *mock {
	return &mock{
		MockService:       NewMockService(ctrl),
		MockhandlerLogger: NewMockhandlerLogger(ctrl),
	}
}

func TestJobOffersGetHandler(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	owner := entities.Actor{ID: "cust-1", Role: entities.RoleCustomer}

	offers := []entities.Offer{
		{
			ID:        "offer-1",
			JobID:     "job-1",
			BidderID:  "drv-1",
			Amount:    12,
			Status:    entities.OfferPending,
			CreatedAt: fixedTime,
		},
		{
			ID:         "offer-2",
			JobID:      "job-1",
			BidderID:   "drv-2",
			Amount:     15,
			EtaMinutes: 7,
			Status:     entities.OfferPending,
			CreatedAt:  fixedTime,
			ExpiresAt:  fixedTime.Add(5 * time.Minute),
		},
	}

	tests := []struct {
		name           string
		jobID          string
		caller         *entities.Actor
		mockSetup      func(m *mock)
		expectedStatus int
	}{
		{
			name:   "Владелец видит все офферы",
			jobID:  "job-1",
			caller: &owner,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					ListOffers(gomock.Any(), "job-1", owner).
					Return(offers, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Запрос без идентификации отклоняется",
			jobID:          "job-1",
			caller:         nil,
			mockSetup:      nil,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Пустой идентификатор заказа",
			jobID:          "",
			caller:         &owner,
			mockSetup:      nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Заказ не найден",
			jobID:  "missing",
			caller: &owner,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					ListOffers(gomock.Any(), "missing", owner).
					Return(nil, lifecycle.ErrJobNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Ошибка сервиса при получении офферов",
			jobID:  "job-1",
			caller: &owner,
			mockSetup: func(m *mock) {
				m.MockService.EXPECT().
					ListOffers(gomock.Any(), "job-1", owner).
					Return(nil, errors.New("database connection error"))
				m.MockhandlerLogger.EXPECT().
					Error(gomock.Any(), gomock.Any()).
					AnyTimes()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			m := newMock(ctrl)

			m.MockhandlerLogger.EXPECT().
				With(gomock.Any()).
				Return(m.MockhandlerLogger).
				AnyTimes()

			if tt.mockSetup != nil {
				tt.mockSetup(m)
			}

			handler := job_offers_get.New(m.MockhandlerLogger, m.MockService)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+tt.jobID+"/offers", http.NoBody)
			if tt.jobID != "" {
				req = mux.SetURLVars(req, map[string]string{"id": tt.jobID})
			}
			if tt.caller != nil {
				req = req.WithContext(actor.WithActor(req.Context(), *tt.caller))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "unexpected status code")

			if tt.expectedStatus == http.StatusOK {
				require.NotEmpty(t, w.Body.String())
				assert.Contains(t, w.Body.String(), "offer-1")
				assert.Contains(t, w.Body.String(), "offer-2")
				// only the offer with a deadline carries the field
				assert.Equal(t, 1, bytes.Count(w.Body.Bytes(), []byte("expires_at")))
			}
		})
	}
}
