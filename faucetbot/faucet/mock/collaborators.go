package mock

import (
	context "context"
	reflect "reflect"

	decimal "github.com/shopspring/decimal"
	models "github.com/textrp/faucetbot/faucetbot/database/models"
	faucet "github.com/textrp/faucetbot/faucetbot/faucet"
	gomock "go.uber.org/mock/gomock"
)

// MockLedger is a mock of Ledger interface.
type MockLedger struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerMockRecorder
	isgomock struct{}
}

// MockLedgerMockRecorder is the mock recorder for MockLedger.
type MockLedgerMockRecorder struct {
	mock *MockLedger
}

// NewMockLedger creates a new mock instance.
func NewMockLedger(ctrl *gomock.Controller) *MockLedger {
	mock := &MockLedger{ctrl: ctrl}
	mock.recorder = &MockLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedger) EXPECT() *MockLedgerMockRecorder {
	return m.recorder
}

// GetClaimRecord mocks base method.
func (m *MockLedger) GetClaimRecord(ctx context.Context, wallet string) (*models.ClaimRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetClaimRecord", ctx, wallet)
	ret0, _ := ret[0].(*models.ClaimRecord)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetClaimRecord indicates an expected call of GetClaimRecord.
func (mr *MockLedgerMockRecorder) GetClaimRecord(ctx, wallet any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetClaimRecord", reflect.TypeOf((*MockLedger)(nil).GetClaimRecord), ctx, wallet)
}

// IsBlacklisted mocks base method.
func (m *MockLedger) IsBlacklisted(ctx context.Context, wallet string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsBlacklisted", ctx, wallet)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsBlacklisted indicates an expected call of IsBlacklisted.
func (mr *MockLedgerMockRecorder) IsBlacklisted(ctx, wallet any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsBlacklisted", reflect.TypeOf((*MockLedger)(nil).IsBlacklisted), ctx, wallet)
}

// RecordClaim mocks base method.
func (m *MockLedger) RecordClaim(ctx context.Context, wallet string, amount decimal.Decimal, txHash string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordClaim", ctx, wallet, amount, txHash)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordClaim indicates an expected call of RecordClaim.
func (mr *MockLedgerMockRecorder) RecordClaim(ctx, wallet, amount, txHash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordClaim", reflect.TypeOf((*MockLedger)(nil).RecordClaim), ctx, wallet, amount, txHash)
}

// MockBalanceSource is a mock of BalanceSource interface.
type MockBalanceSource struct {
	ctrl     *gomock.Controller
	recorder *MockBalanceSourceMockRecorder
	isgomock struct{}
}

// MockBalanceSourceMockRecorder is the mock recorder for MockBalanceSource.
type MockBalanceSourceMockRecorder struct {
	mock *MockBalanceSource
}

// NewMockBalanceSource creates a new mock instance.
func NewMockBalanceSource(ctrl *gomock.Controller) *MockBalanceSource {
	mock := &MockBalanceSource{ctrl: ctrl}
	mock.recorder = &MockBalanceSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBalanceSource) EXPECT() *MockBalanceSourceMockRecorder {
	return m.recorder
}

// GetBalance mocks base method.
func (m *MockBalanceSource) GetBalance(ctx context.Context, wallet string) (decimal.Decimal, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", ctx, wallet)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockBalanceSourceMockRecorder) GetBalance(ctx, wallet any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockBalanceSource)(nil).GetBalance), ctx, wallet)
}

// MockTrustLineSource is a mock of TrustLineSource interface.
type MockTrustLineSource struct {
	ctrl     *gomock.Controller
	recorder *MockTrustLineSourceMockRecorder
	isgomock struct{}
}

// MockTrustLineSourceMockRecorder is the mock recorder for MockTrustLineSource.
type MockTrustLineSourceMockRecorder struct {
	mock *MockTrustLineSource
}

// NewMockTrustLineSource creates a new mock instance.
func NewMockTrustLineSource(ctrl *gomock.Controller) *MockTrustLineSource {
	mock := &MockTrustLineSource{ctrl: ctrl}
	mock.recorder = &MockTrustLineSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTrustLineSource) EXPECT() *MockTrustLineSourceMockRecorder {
	return m.recorder
}

// CheckTrustLine mocks base method.
func (m *MockTrustLineSource) CheckTrustLine(ctx context.Context, wallet, currency, issuer string) (*faucet.TrustLine, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckTrustLine", ctx, wallet, currency, issuer)
	ret0, _ := ret[0].(*faucet.TrustLine)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckTrustLine indicates an expected call of CheckTrustLine.
func (mr *MockTrustLineSourceMockRecorder) CheckTrustLine(ctx, wallet, currency, issuer any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckTrustLine", reflect.TypeOf((*MockTrustLineSource)(nil).CheckTrustLine), ctx, wallet, currency, issuer)
}

// MockNFTCounter is a mock of NFTCounter interface.
type MockNFTCounter struct {
	ctrl     *gomock.Controller
	recorder *MockNFTCounterMockRecorder
	isgomock struct{}
}

// MockNFTCounterMockRecorder is the mock recorder for MockNFTCounter.
type MockNFTCounterMockRecorder struct {
	mock *MockNFTCounter
}

// NewMockNFTCounter creates a new mock instance.
func NewMockNFTCounter(ctrl *gomock.Controller) *MockNFTCounter {
	mock := &MockNFTCounter{ctrl: ctrl}
	mock.recorder = &MockNFTCounterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNFTCounter) EXPECT() *MockNFTCounterMockRecorder {
	return m.recorder
}

// CountMatchingNFTs mocks base method.
func (m *MockNFTCounter) CountMatchingNFTs(ctx context.Context, wallet string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountMatchingNFTs", ctx, wallet)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountMatchingNFTs indicates an expected call of CountMatchingNFTs.
func (mr *MockNFTCounterMockRecorder) CountMatchingNFTs(ctx, wallet any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountMatchingNFTs", reflect.TypeOf((*MockNFTCounter)(nil).CountMatchingNFTs), ctx, wallet)
}

// MockPaymentSender is a mock of PaymentSender interface.
type MockPaymentSender struct {
	ctrl     *gomock.Controller
	recorder *MockPaymentSenderMockRecorder
	isgomock struct{}
}

// MockPaymentSenderMockRecorder is the mock recorder for MockPaymentSender.
type MockPaymentSenderMockRecorder struct {
	mock *MockPaymentSender
}

// NewMockPaymentSender creates a new mock instance.
func NewMockPaymentSender(ctrl *gomock.Controller) *MockPaymentSender {
	mock := &MockPaymentSender{ctrl: ctrl}
	mock.recorder = &MockPaymentSenderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPaymentSender) EXPECT() *MockPaymentSenderMockRecorder {
	return m.recorder
}

// SendPayment mocks base method.
func (m *MockPaymentSender) SendPayment(ctx context.Context, req faucet.PaymentRequest) (*faucet.PaymentResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendPayment", ctx, req)
	ret0, _ := ret[0].(*faucet.PaymentResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendPayment indicates an expected call of SendPayment.
func (mr *MockPaymentSenderMockRecorder) SendPayment(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendPayment", reflect.TypeOf((*MockPaymentSender)(nil).SendPayment), ctx, req)
}
