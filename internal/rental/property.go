// Copyright 2026 The Rentbase Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rental

import "time"

// Property listing status. Transitions are caller-driven; the store persists
// whatever status it is handed.
const (
	PropertyStatusAvailable   = "available"
	PropertyStatusLeased      = "leased"
	PropertyStatusMaintenance = "maintenance"
)

// Property represents a rental listing owned by exactly one User.
type Property struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"owner_id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Zip          string    `json:"zip"`
	PropertyType string    `json:"property_type"`
	Price        float64   `json:"price"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	Area         float64   `json:"area"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	Status       string    `json:"status"`
	IsApproved   bool      `json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
}

// PropertyUpdate is a partial update; nil fields are left unchanged. Slice
// fields use pointers so that an explicit empty list can replace the stored
// one while nil leaves it alone.
type PropertyUpdate struct {
	OwnerID      *int64
	Name         *string
	Address      *string
	City         *string
	State        *string
	Zip          *string
	PropertyType *string
	Price        *float64
	Bedrooms     *int
	Bathrooms    *int
	Area         *float64
	Features     *[]string
	Images       *[]string
	Status       *string
	IsApproved   *bool
}

// Apply merges the update over p in place.
func (upd PropertyUpdate) Apply(p *Property) {
	if upd.OwnerID != nil {
		p.OwnerID = *upd.OwnerID
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.City != nil {
		p.City = *upd.City
	}
	if upd.State != nil {
		p.State = *upd.State
	}
	if upd.Zip != nil {
		p.Zip = *upd.Zip
	}
	if upd.PropertyType != nil {
		p.PropertyType = *upd.PropertyType
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Bedrooms != nil {
		p.Bedrooms = *upd.Bedrooms
	}
	if upd.Bathrooms != nil {
		p.Bathrooms = *upd.Bathrooms
	}
	if upd.Area != nil {
		p.Area = *upd.Area
	}
	if upd.Features != nil {
		p.Features = copyStrings(*upd.Features)
	}
	if upd.Images != nil {
		p.Images = copyStrings(*upd.Images)
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.IsApproved != nil {
		p.IsApproved = *upd.IsApproved
	}
}

// copyStrings copies a list without collapsing an explicit empty slice to
// nil, so "replace with empty" survives a round trip.
func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
