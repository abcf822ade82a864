// Package catalog loads the read-only catalog data the quote core consumes.
package catalog

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"wireless-quote/core/types"
	"wireless-quote/internal/errors"
)

// Catalog file names within a catalog directory
const (
	PlansFile        = "plans.hcl"
	InsuranceFile    = "insurance.hcl"
	DevicesFile      = "devices.hcl"
	ServicePlansFile = "serviceplans.hcl"
	PromotionsFile   = "promotions.hcl"
)

// Load reads all catalog files from a directory. Missing files yield empty
// tables, not errors; a present but malformed file is an error.
func Load(dir string) (*types.Catalog, error) {
	parser := hclparse.NewParser()
	cat := &types.Catalog{}

	var plans plansFile
	if err := decodeFile(parser, filepath.Join(dir, PlansFile), &plans); err != nil {
		return nil, err
	}
	for _, b := range plans.Plans {
		cat.Plans = append(cat.Plans, b.toPlan())
	}
	if plans.Discounts != nil {
		cat.Discounts = types.DiscountSettings{
			Autopay:        plans.Discounts.Autopay,
			InsiderPercent: plans.Discounts.InsiderPercent,
			ThirdLineFree:  plans.Discounts.ThirdLineFree,
		}
	}

	var insurance insuranceFile
	if err := decodeFile(parser, filepath.Join(dir, InsuranceFile), &insurance); err != nil {
		return nil, err
	}
	for _, b := range insurance.Plans {
		cat.Insurance = append(cat.Insurance, types.InsurancePlan{ID: b.ID, Name: b.Name, Price: b.Price})
	}

	var devices devicesFile
	if err := decodeFile(parser, filepath.Join(dir, DevicesFile), &devices); err != nil {
		return nil, err
	}
	for _, b := range devices.Models {
		cat.DeviceModels = append(cat.DeviceModels, b.toModel())
	}

	var servicePlans servicePlansFile
	if err := decodeFile(parser, filepath.Join(dir, ServicePlansFile), &servicePlans); err != nil {
		return nil, err
	}
	for _, b := range servicePlans.Plans {
		cat.ServicePlans = append(cat.ServicePlans, types.ServicePlan{
			ID:             b.ID,
			Name:           b.Name,
			DeviceCategory: types.DeviceCategory(b.DeviceCategory),
			Price:          b.Price,
		})
	}

	var promotions promotionsFile
	if err := decodeFile(parser, filepath.Join(dir, PromotionsFile), &promotions); err != nil {
		return nil, err
	}
	for _, b := range promotions.Promotions {
		cat.Promotions = append(cat.Promotions, b.toPromotion())
	}

	return cat, nil
}

// decodeFile parses one HCL catalog file into target. A missing file is not
// an error: the table simply stays empty.
func decodeFile(parser *hclparse.Parser, path string, target interface{}) error {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Catalog("failed to read catalog file", err).WithContext("path", path)
	}

	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return errors.Catalog("failed to parse catalog file", diags).WithContext("path", path)
	}

	if diags := gohcl.DecodeBody(file.Body, nil, target); diags.HasErrors() {
		return errors.Catalog("failed to decode catalog file", diags).WithContext("path", path)
	}
	return nil
}
