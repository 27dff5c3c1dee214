package handler

import (
	"net/http"

	"github.com/equinelab/coatgen/logger"
	"github.com/equinelab/coatgen/pkg/render"
	"go.uber.org/zap"
)

// GET /
//
// Human-readable overview of the locus catalog.
func (dbctx *DBContext) MainPage(w http.ResponseWriter, r *http.Request) {

	data := render.CatalogPageData{Version: Version}
	for _, l := range dbctx.Catalog.Loci() {
		data.Loci = append(data.Loci, render.LocusRow{
			Name:    l.Name,
			Symbol:  l.Symbol,
			Alleles: l.Alleles,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.RenderCatalogPage(w, data); err != nil {
		logger.Error("Rendering catalog page failed", zap.Error(err))
	}
}
