package dto

import (
	"bytes"
	"encoding/json"
	"slices"
	"sort"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
)

// PatchFields is the whitelist of JSON keys a partial update may carry.
type PatchFields []string

var (
	ProviderPatchFields = PatchFields{"provider_name"}
	CurrencyPatchFields = PatchFields{"currency_name"}
	ArticlePatchFields  = PatchFields{"price", "article_id", "currency_id", "provider_id", "provider_no"}
)

// Check rejects the first key (in sorted order) that is not whitelisted.
func (f PatchFields) Check(keys []string) error {
	sorted := slices.Clone(keys)
	sort.Strings(sorted)
	for _, k := range sorted {
		if !slices.Contains(f, k) {
			return apperrors.NewValidationFailedError("Invalid field: " + k)
		}
	}
	return nil
}

// DecodePatch checks the keys of a JSON object body against allowed and
// decodes it into out. An empty body is an empty patch.
func DecodePatch(body []byte, allowed PatchFields, out any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apperrors.NewValidationFailedError(MsgInvalidRequestBody)
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	if err := allowed.Check(keys); err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewValidationFailedError(MsgInvalidRequestBody)
	}
	return nil
}
