package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

// seoRequest takes keywords as comma separated text.
type seoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	OGImageURL  string `json:"ogImageUrl"`
}

// GetSeo returns the effective metadata of one public page.
func (a *API) GetSeo(c *gin.Context) {
	fields, err := a.seo.Effective(c.Param("page"))
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seo": seoFieldsPayload(fields)})
}

// ListSeoRecords returns the editing state of every page.
func (a *API) ListSeoRecords(c *gin.Context) {
	records, err := a.seo.Records()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, record := range records {
		defaults, err := a.seo.Defaults(record.Page())
		if err != nil {
			a.handleServiceError(c, err)
			return
		}
		fields := record.Fields()
		items = append(items, seoRecordPayload(record, service.MergeSeo(&fields, defaults)))
	}
	c.JSON(http.StatusOK, gin.H{"pages": items})
}

// SaveSeo stores the metadata of one page, inserting or updating as needed.
func (a *API) SaveSeo(c *gin.Context) {
	var payload seoRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	record, err := a.seo.Record(c.Param("page"))
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	saved, err := a.seo.Save(record.WithFields(service.SeoFields{
		Title:       payload.Title,
		Description: payload.Description,
		Keywords:    service.SplitList(payload.Keywords),
		OGImageURL:  payload.OGImageURL,
	}))
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	effective, err := a.seo.Effective(saved.Page())
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "SEO settings saved", "تم حفظ إعدادات SEO", gin.H{"page": seoRecordPayload(saved, effective)})
}

// ResetSeo returns the page record filled with defaults. The stored row is
// left unchanged until the admin saves.
func (a *API) ResetSeo(c *gin.Context) {
	record, err := a.seo.Record(c.Param("page"))
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	reset, err := a.seo.ResetToDefaults(record)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	fields := reset.Fields()
	a.respondSuccess(c, http.StatusOK, "Default values restored, save to apply", "تمت استعادة القيم الافتراضية، احفظ للتطبيق",
		gin.H{"page": seoRecordPayload(reset, fields)},
	)
}
