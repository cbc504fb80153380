package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/arifmahmud/sheetboard/internal/contact"
	"github.com/arifmahmud/sheetboard/internal/dashboard"
	"github.com/arifmahmud/sheetboard/internal/sheets"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Home",
	})
}

func (s *Server) handleInventory(c *gin.Context) {
	if s.source == nil {
		s.renderError(c, sheets.ErrNoClient)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.fetchTimeout())
	defer cancel()

	rows, err := s.source.Records(ctx, s.cfg.Sheets.StockWorksheet)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "inventory.html", gin.H{
		"Title": "Inventory",
		"Rows":  rows,
	})
}

func (s *Server) handleDashboard(c *gin.Context) {
	if s.source == nil {
		s.renderError(c, sheets.ErrNoClient)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.fetchTimeout())
	defer cancel()

	var pnlRows, stockRows, customerRows, dispatchRows []sheets.Record

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pnlRows, err = s.source.Records(gctx, s.cfg.Sheets.PNLWorksheet)
		return err
	})
	g.Go(func() error {
		var err error
		stockRows, err = s.source.Records(gctx, s.cfg.Sheets.StockWorksheet)
		return err
	})
	g.Go(func() error {
		var err error
		customerRows, err = s.source.Records(gctx, s.cfg.Sheets.CustomerWorksheet)
		return err
	})
	g.Go(func() error {
		// Dispatch data is optional: the dashboard degrades to zeroed
		// status counts when it cannot be read.
		rows, err := s.source.Records(gctx, s.cfg.Sheets.DispatchWorksheet)
		if err != nil {
			log.Warn().Err(err).Msg("dispatch worksheet unavailable, using zero counts")
			return nil
		}
		dispatchRows = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		s.renderError(c, err)
		return
	}

	summary := dashboard.ComputeSummary(pnlRows, stockRows, customerRows, dispatchRows)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":              "Dashboard",
		"PNLMetrics":         summary.PNLMetrics,
		"TotalProducts":      summary.TotalProducts,
		"LowStockCount":      summary.LowStockCount,
		"TotalSalesValue":    summary.TotalSalesValue,
		"TotalPurchaseValue": summary.TotalPurchaseValue,
		"TotalExpense":       summary.TotalExpense,
		"TotalCustomers":     summary.TotalCustomers,
		"LatestUpdate":       summary.LatestUpdate,
		"SalesSKUWise":       summary.SalesSKUWise,
		"DispatchStatus":     summary.DispatchStatus,
	})
}

func (s *Server) handleOrders(c *gin.Context) {
	c.HTML(http.StatusOK, "orders.html", gin.H{
		"Title": "Orders",
	})
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title": "Contact",
	})
}

func (s *Server) handleContactSubmit(c *gin.Context) {
	sub := contact.Submission{
		Name:       strings.TrimSpace(c.PostForm("name")),
		Email:      strings.TrimSpace(c.PostForm("email")),
		Message:    strings.TrimSpace(c.PostForm("message")),
		ReceivedAt: time.Now().UTC(),
	}

	if sub.Name == "" && sub.Email == "" && sub.Message == "" {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"Title": "Contact",
			"Error": "Please fill in the form before submitting.",
		})
		return
	}

	if err := s.contacts.Save(c.Request.Context(), sub); err != nil {
		log.Error().Err(err).Msg("failed to store contact submission")
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"Title": "Contact",
			"Error": "Your message could not be saved. Please try again later.",
		})
		return
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title":     "Contact",
		"Submitted": true,
	})
}

// renderError maps the sheet-access failure taxonomy onto a human-readable
// error page. Nothing from the sheets layer reaches the client raw.
func (s *Server) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Could not fetch data from the spreadsheet. Please try again later."

	switch {
	case errors.Is(err, sheets.ErrNoClient), errors.Is(err, sheets.ErrNoCredentials):
		status = http.StatusServiceUnavailable
		message = "Google Sheets access is not configured. Set the service account credentials and restart."
	case errors.Is(err, sheets.ErrSpreadsheetNotFound):
		message = "The spreadsheet \"" + s.cfg.Sheets.SpreadsheetName + "\" could not be found. Check the name and the service account's access."
	case errors.Is(err, sheets.ErrWorksheetNotFound):
		message = "A required worksheet is missing from the spreadsheet. Check the worksheet names."
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("page data fetch failed")

	c.HTML(status, "error.html", gin.H{
		"Title":   "Error",
		"Message": message,
	})
}
