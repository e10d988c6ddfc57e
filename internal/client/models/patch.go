package models

// GemstonePatch is a partial update: nil fields are left untouched. The JSON
// encoding omits unset fields, matching the catalog's partial-update payload.
type GemstonePatch struct {
	Name          *string     `json:"name,omitempty"`
	Category      *string     `json:"category,omitempty"`
	Type          *string     `json:"type,omitempty"`
	Weight        *float64    `json:"weight,omitempty"`
	Dimensions    *Dimensions `json:"dimensions,omitempty"`
	Color         *string     `json:"color,omitempty"`
	Clarity       *string     `json:"clarity,omitempty"`
	Cut           *string     `json:"cut,omitempty"`
	Origin        *string     `json:"origin,omitempty"`
	Treatment     *string     `json:"treatment,omitempty"`
	Certification *string     `json:"certification,omitempty"`

	AcquisitionDate  *string  `json:"acquisitionDate,omitempty"`
	AcquisitionPrice *float64 `json:"acquisitionPrice,omitempty"`
	EstimatedValue   *float64 `json:"estimatedValue,omitempty"`
	Seller           *string  `json:"seller,omitempty"`

	Notes  *string   `json:"notes,omitempty"`
	Tags   *[]string `json:"tags,omitempty"`
	Images *[]string `json:"images,omitempty"`
	Video  *string   `json:"video,omitempty"`
	QRCode *string   `json:"qrCode,omitempty"`
}

// IsZero reports whether the patch carries no changes at all.
func (p GemstonePatch) IsZero() bool {
	return p == GemstonePatch{}
}

// Apply overlays the patch onto g.
func (p GemstonePatch) Apply(g *Gemstone) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Type != nil {
		g.Type = *p.Type
	}
	if p.Weight != nil {
		g.Weight = *p.Weight
	}
	if p.Dimensions != nil {
		g.Dimensions = *p.Dimensions
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
	if p.Clarity != nil {
		g.Clarity = *p.Clarity
	}
	if p.Cut != nil {
		g.Cut = *p.Cut
	}
	if p.Origin != nil {
		g.Origin = *p.Origin
	}
	if p.Treatment != nil {
		g.Treatment = *p.Treatment
	}
	if p.Certification != nil {
		g.Certification = *p.Certification
	}
	if p.AcquisitionDate != nil {
		g.AcquisitionDate = *p.AcquisitionDate
	}
	if p.AcquisitionPrice != nil {
		g.AcquisitionPrice = *p.AcquisitionPrice
	}
	if p.EstimatedValue != nil {
		g.EstimatedValue = *p.EstimatedValue
	}
	if p.Seller != nil {
		g.Seller = *p.Seller
	}
	if p.Notes != nil {
		g.Notes = *p.Notes
	}
	if p.Tags != nil {
		g.Tags = NormalizeTags(*p.Tags)
	}
	if p.Images != nil {
		g.Images = *p.Images
	}
	if p.Video != nil {
		g.Video = *p.Video
	}
	if p.QRCode != nil {
		g.QRCode = *p.QRCode
	}
}
