package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/core/services"
	"github.com/storebooks/cash_position_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindRateAsOf(ctx context.Context, companyID, fromCurrencyID, toCurrencyID string, asOf time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, companyID, fromCurrencyID, toCurrencyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context, companyID string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          *services.ExchangeRateService
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	currencySvc := services.NewCurrencyService(suite.mockCurrencyRepo, "VND")
	suite.service = services.NewExchangeRateService(suite.mockRateRepo, currencySvc)
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()
	creatorUserID := uuid.NewString()
	fromID := "cur-usd"
	toID := "cur-vnd"
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: fromID,
		ToCurrencyID:   toID,
		Rate:           decimal.NewFromInt(25000),
		RateDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, fromID).Return(&domain.Currency{CurrencyID: fromID, CurrencyCode: "USD"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, toID).Return(&domain.Currency{CurrencyID: toID, CurrencyCode: "VND"}, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CompanyID == companyID &&
			r.FromCurrencyID == fromID &&
			r.ToCurrencyID == toID &&
			r.Rate.Equal(req.Rate) &&
			r.RateDate.Equal(req.RateDate) &&
			r.CreatedBy == creatorUserID &&
			r.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, companyID, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.NotEmpty(rate.ExchangeRateID)
	suite.Equal(companyID, rate.CompanyID)
	suite.True(req.Rate.Equal(rate.Rate))

	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_InvalidRate() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: "cur-usd",
		ToCurrencyID:   "cur-vnd",
		Rate:           decimal.Zero, // Invalid rate
		RateDate:       time.Now(),
	}

	rate, err := suite.service.CreateExchangeRate(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "must be positive")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SameCurrency() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: "cur-usd",
		ToCurrencyID:   "cur-usd", // Same currency
		Rate:           decimal.NewFromInt(1),
		RateDate:       time.Now(),
	}

	rate, err := suite.service.CreateExchangeRate(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "cannot be the same")
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_FromCurrencyNotFound() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: "cur-gone",
		ToCurrencyID:   "cur-vnd",
		Rate:           decimal.NewFromInt(25000),
		RateDate:       time.Now(),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "cur-gone").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "'from' currency")
	suite.Contains(err.Error(), "not found")
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SaveError() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{
		FromCurrencyID: "cur-usd",
		ToCurrencyID:   "cur-vnd",
		Rate:           decimal.NewFromInt(25000),
		RateDate:       time.Now(),
	}
	expectedErr := assert.AnError

	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "cur-usd").Return(&domain.Currency{CurrencyID: "cur-usd"}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "cur-vnd").Return(&domain.Currency{CurrencyID: "cur-vnd"}, nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(expectedErr).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, uuid.NewString(), req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, expectedErr)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()
	expected := []domain.ExchangeRate{{ExchangeRateID: "rate-1"}, {ExchangeRateID: "rate-2"}}

	suite.mockRateRepo.On("ListExchangeRates", ctx, companyID).Return(expected, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx, companyID)

	suite.Require().NoError(err)
	suite.Equal(expected, rates)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_Empty() {
	ctx := context.Background()
	companyID := uuid.NewString()
	var expected []domain.ExchangeRate

	suite.mockRateRepo.On("ListExchangeRates", ctx, companyID).Return(expected, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx, companyID)

	suite.Require().NoError(err)
	suite.Empty(rates)
	suite.NotNil(rates)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRateAsOf_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()
	asOf := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	expected := &domain.ExchangeRate{
		ExchangeRateID: "rate-1",
		FromCurrencyID: "cur-usd",
		ToCurrencyID:   "cur-vnd",
		Rate:           decimal.NewFromInt(25000),
		RateDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRateRepo.On("FindRateAsOf", ctx, companyID, "cur-usd", "cur-vnd", asOf).Return(expected, nil).Once()

	rate, err := suite.service.ResolveRateAsOf(ctx, companyID, "cur-usd", "cur-vnd", asOf)

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRateAsOf_IdentityPair() {
	ctx := context.Background()

	rate, err := suite.service.ResolveRateAsOf(ctx, uuid.NewString(), "cur-usd", "cur-usd", time.Now())

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateAsOf")
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRateAsOf_NotFoundPassesThrough() {
	ctx := context.Background()
	companyID := uuid.NewString()
	asOf := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRateRepo.On("FindRateAsOf", ctx, companyID, "cur-usd", "cur-vnd", asOf).
		Return(nil, apperrors.NewNotFoundError("no exchange rate on or before date")).Once()

	rate, err := suite.service.ResolveRateAsOf(ctx, companyID, "cur-usd", "cur-vnd", asOf)

	suite.Require().Error(err)
	suite.Nil(rate)
	// Not-found is a valid, displayable outcome that callers branch on.
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestResolveRateAsOf_RepoError() {
	ctx := context.Background()
	companyID := uuid.NewString()
	asOf := time.Now()
	expectedErr := assert.AnError

	suite.mockRateRepo.On("FindRateAsOf", ctx, companyID, "cur-usd", "cur-vnd", asOf).Return(nil, expectedErr).Once()

	rate, err := suite.service.ResolveRateAsOf(ctx, companyID, "cur-usd", "cur-vnd", asOf)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, expectedErr)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

// --- SelectRateAsOf ---

// A later effective date must win only once asOf reaches it; before the
// earliest effective date no rate applies at all.
func TestSelectRateAsOf_MonotonicSelection(t *testing.T) {
	janRate := domain.ExchangeRate{
		ExchangeRateID: "rate-jan",
		FromCurrencyID: "cur-usd",
		ToCurrencyID:   "cur-vnd",
		Rate:           decimal.NewFromFloat(1.0),
		RateDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	febRate := domain.ExchangeRate{
		ExchangeRateID: "rate-feb",
		FromCurrencyID: "cur-usd",
		ToCurrencyID:   "cur-vnd",
		Rate:           decimal.NewFromFloat(1.1),
		RateDate:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	otherPair := domain.ExchangeRate{
		ExchangeRateID: "rate-eur",
		FromCurrencyID: "cur-eur",
		ToCurrencyID:   "cur-vnd",
		Rate:           decimal.NewFromFloat(2.0),
		RateDate:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	// Deliberately unordered: selection must not depend on input order.
	rates := []domain.ExchangeRate{febRate, otherPair, janRate}

	tests := []struct {
		name   string
		asOf   time.Time
		wantID string
	}{
		{
			name:   "between effective dates uses the earlier rate",
			asOf:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantID: "rate-jan",
		},
		{
			name:   "after both uses the later rate",
			asOf:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
			wantID: "rate-feb",
		},
		{
			name:   "exactly on an effective date uses that rate",
			asOf:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantID: "rate-feb",
		},
		{
			name: "before the earliest effective date finds nothing",
			asOf: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.SelectRateAsOf(rates, "cur-usd", "cur-vnd", tt.asOf)
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ExchangeRateID)
		})
	}
}

func TestSelectRateAsOf_IgnoresOtherPairs(t *testing.T) {
	rates := []domain.ExchangeRate{
		{
			ExchangeRateID: "rate-eur",
			FromCurrencyID: "cur-eur",
			ToCurrencyID:   "cur-vnd",
			Rate:           decimal.NewFromFloat(2.0),
			RateDate:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	got := services.SelectRateAsOf(rates, "cur-usd", "cur-vnd", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Nil(t, got)
}

// --- Run Suite ---
func TestExchangeRateService(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
