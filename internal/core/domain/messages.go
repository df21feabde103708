package domain

// Caller-facing messages shared by the service and storage layers.
const (
	MsgInvalidProviderID  = "Invalid provider id"
	MsgInvalidCurrencyID  = "Invalid currency id"
	MsgInvalidArticleNo   = "Invalid article number"
	MsgProviderNameEmpty  = "Provider name cannot be empty"
	MsgCurrencyNameEmpty  = "Currency name cannot be empty"
	MsgCurrencyIDEmpty    = "Currency id cannot be empty"
	MsgProviderNameExists = "Provider with this name already exists"
	MsgCurrencyExists     = "Currency with this data already exists"
	MsgArticleExists      = "Article with this currency and provider already exists"
)
