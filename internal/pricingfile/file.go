// Package pricingfile keeps a host's pricing records in a local JSON file.
package pricingfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Load reads the records at path. A missing file yields an empty store for
// hostID with a zero base price.
func Load(path string, hostID uuid.UUID) (*pricing.RuleStore, uuid.UUID, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if hostID == uuid.Nil {
			hostID = uuid.New()
		}
		return pricing.NewRuleStore(decimal.Zero), hostID, nil
	}
	if err != nil {
		return nil, uuid.Nil, errs.Wrapf(err, "read %s", path)
	}

	var rec pricing.Records
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, uuid.Nil, errs.Wrapf(err, "decode %s", path)
	}
	store, err := pricing.LoadRuleStore(rec)
	if err != nil {
		return nil, uuid.Nil, errs.Wrapf(err, "load %s", path)
	}
	return store, rec.HostID, nil
}

// Save writes through a temp file and renames it into place.
func Save(path string, hostID uuid.UUID, store *pricing.RuleStore) error {
	raw, err := json.MarshalIndent(store.Serialize(hostID), "", "  ")
	if err != nil {
		return errs.Wrap(err, "encode records")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pricing-*.json")
	if err != nil {
		return errs.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(raw, '\n')); err != nil {
		_ = tmp.Close()
		return errs.Wrap(err, "write temp file")
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrap(err, "close temp file")
	}
	return errs.Wrapf(os.Rename(tmp.Name(), path), "replace %s", path)
}
