package entities

// SetupStatus is monotonic: INCOMPLETE → COMPLETE.
type SetupStatus string

const (
	SetupStatusIncomplete SetupStatus = "INCOMPLETE"
	SetupStatusComplete   SetupStatus = "COMPLETE"
)

// DataSourceStatus is the connection state of a customer data source.
type DataSourceStatus string

const (
	DataSourceDisconnected DataSourceStatus = "DISCONNECTED"
	DataSourceConnected    DataSourceStatus = "CONNECTED"
)

// APIKey is a named credential placeholder. Only the masked display
// value is ever stored.
type APIKey struct {
	Name   string `json:"name"`
	Masked string `json:"masked"`
}

// DataSource is a named customer data connection.
type DataSource struct {
	Name   string           `json:"name"`
	Status DataSourceStatus `json:"status"`
}

// TechnicalSetup tracks the technical onboarding of one customer.
// It is keyed 1:1 by CustomerID and created lazily as a stub the first
// time a customer's setup is needed.
type TechnicalSetup struct {
	CustomerID  string       `json:"customer_id"`
	Status      SetupStatus  `json:"status"`
	APIKeys     []APIKey     `json:"api_keys"`
	DataSources []DataSource `json:"data_sources"`
}

// NewSetupStub returns the placeholder setup record used until real
// credentials and data sources are filled in.
func NewSetupStub(customerID string) TechnicalSetup {
	return TechnicalSetup{
		CustomerID:  customerID,
		Status:      SetupStatusIncomplete,
		APIKeys:     []APIKey{{Name: "Primary API key", Masked: "••••••••••1234"}},
		DataSources: []DataSource{{Name: "Telephony", Status: DataSourceDisconnected}},
	}
}
