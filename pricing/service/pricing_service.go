package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	tablesDal "github.com/kindfood/erp-system/bomtable/dal"
	tablesIface "github.com/kindfood/erp-system/bomtable/dal/iface"
	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
	"github.com/kindfood/erp-system/localstate"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/pricing/dal"
	"github.com/kindfood/erp-system/pricing/dal/iface"
	"github.com/kindfood/erp-system/pricing/domain"
)

type PricingService struct {
	loggerProvider logger.Provider
	schemesDal     iface.PricingSchemes
	tablesDal      tablesIface.BOMTables
	state          localstate.Store
	policy         domain.Policy
	validate       *validator.Validate
}

func NewPricingService(log logger.Provider, conn *connection.Connection, policy domain.Policy) *PricingService {
	return &PricingService{
		log,
		dal.NewPricingSchemesFirestoreWithClient(conn.Firestore),
		tablesDal.NewBOMTablesFirestoreWithClient(conn.Firestore),
		localstate.NewFirestoreStore(conn.Firestore),
		policy,
		validator.New(),
	}
}

func (s *PricingService) List(ctx context.Context) ([]domain.Scheme, error) {
	return s.schemesDal.List(ctx)
}

func (s *PricingService) Get(ctx context.Context, id string) (*domain.Scheme, error) {
	return s.schemesDal.Get(ctx, id)
}

// Save stores req as a new scheme. Without explicit pricing, the user's working set is saved.
func (s *PricingService) Save(ctx context.Context, req domain.SchemeRequest, by common.UserRef) (*domain.Scheme, error) {
	if err := req.Validate(s.validate); err != nil {
		return nil, err
	}

	if req.PricingData == nil {
		var ws domain.WorkingSet

		ok, err := localstate.GetJSON(ctx, s.state, by.UID, localstate.CurrentPricingDataKey, &ws)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, domain.ErrNoWorkingSet
		}

		req.PricingData = ws.PricingData
	}

	scheme, err := s.schemesDal.Create(ctx, req.Scheme(), by)
	if err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("pricing scheme %s saved by %s", scheme.ID, by.UID)

	return scheme, nil
}

func (s *PricingService) Update(ctx context.Context, id string, req domain.SchemeRequest) (*domain.Scheme, error) {
	if err := req.Validate(s.validate); err != nil {
		return nil, err
	}

	return s.schemesDal.Update(ctx, id, req.Name, req.Note)
}

func (s *PricingService) Delete(ctx context.Context, id string) error {
	return s.schemesDal.Delete(ctx, id)
}

// Apply merges the scheme into the live BOM tables and makes the result uid's working set.
func (s *PricingService) Apply(ctx context.Context, uid, id string) (*domain.WorkingSet, error) {
	scheme, err := s.schemesDal.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	live, err := s.tablesDal.List(ctx)
	if err != nil {
		return nil, err
	}

	items := domain.ApplyScheme(*scheme, live, s.policy)
	ws := domain.WorkingSetFor(*scheme, items)

	if err := localstate.SetJSON(ctx, s.state, uid, localstate.CurrentPricingDataKey, ws); err != nil {
		return nil, err
	}

	s.loggerProvider(ctx).Infof("pricing scheme %s applied for %s: %d of %d tables priced", id, uid, len(items), len(live))

	return &ws, nil
}

// Current returns uid's working set exactly as it was stored.
func (s *PricingService) Current(ctx context.Context, uid string) (string, error) {
	raw, ok, err := s.state.Get(ctx, uid, localstate.CurrentPricingDataKey)
	if err != nil {
		return "", err
	}

	if !ok {
		return "", domain.ErrNoWorkingSet
	}

	return raw, nil
}

// SaveCurrent recalculates ws and stores it as uid's working set.
func (s *PricingService) SaveCurrent(ctx context.Context, uid string, ws domain.WorkingSet) (*domain.WorkingSet, error) {
	ws.PricingData = domain.CalculateAll(ws.PricingData)

	if err := localstate.SetJSON(ctx, s.state, uid, localstate.CurrentPricingDataKey, ws); err != nil {
		return nil, err
	}

	return &ws, nil
}

func (s *PricingService) Calculate(items []domain.PricedItem) []domain.PricedItem {
	return domain.CalculateAll(items)
}
