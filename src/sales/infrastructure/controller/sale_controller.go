package controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sales/src/sales/application/request"
	"sales/src/sales/application/usecase"
	"sales/src/sales/domain/entity"
)

// SaleController maneja las peticiones HTTP para ventas
type SaleController struct {
	createSaleUC *usecase.CreateSaleUseCase
	getSaleUC    *usecase.GetSaleUseCase
	listSalesUC  *usecase.ListSalesUseCase
	updateSaleUC *usecase.UpdateSaleUseCase
	cancelSaleUC *usecase.CancelSaleUseCase
	deleteSaleUC *usecase.DeleteSaleUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	cancelSaleUC *usecase.CancelSaleUseCase,
	deleteSaleUC *usecase.DeleteSaleUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC: createSaleUC,
		getSaleUC:    getSaleUC,
		listSalesUC:  listSalesUC,
		updateSaleUC: updateSaleUC,
		cancelSaleUC: cancelSaleUC,
		deleteSaleUC: deleteSaleUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.CreateSale)
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
		sales.PUT("/:sale_id", c.UpdateSale)
		sales.DELETE("/:sale_id", c.DeleteSale)
		sales.POST("/:sale_id/cancel", c.CancelSale)
	}

	log.Println("Rutas Sales disponibles:")
	log.Println("  POST   /api/v1/sales")
	log.Println("  GET    /api/v1/sales")
	log.Println("  GET    /api/v1/sales/:sale_id")
	log.Println("  PUT    /api/v1/sales/:sale_id")
	log.Println("  DELETE /api/v1/sales/:sale_id")
	log.Println("  POST   /api/v1/sales/:sale_id/cancel")
}

// CreateSale crea una venta con sus items
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if !resp.Success {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to create sale",
			"errors":  resp.Errors,
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Sale created successfully",
		"data":    resp,
	})
}

// GetSale obtiene una venta por ID
func (c *SaleController) GetSale(ctx *gin.Context) {
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	resp := c.getSaleUC.Execute(ctx.Request.Context(), saleID)

	// Success=false sin errores significa venta no encontrada
	if !resp.Success && len(resp.Errors) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
		return
	}
	if !resp.Success {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve sale",
			"errors":  resp.Errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": resp.SaleData})
}

// ListSales lista ventas con paginación (_page/_size)
func (c *SaleController) ListSales(ctx *gin.Context) {
	page := queryInt(ctx, "_page", 1)
	size := queryInt(ctx, "_size", 10)
	if page < 1 {
		page = 1
	}

	resp := c.listSalesUC.Execute(ctx.Request.Context(), (page-1)*size, size)
	if !resp.Success {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to list sales",
			"errors":  resp.Errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"items":       resp.Items,
		"total_count": resp.TotalCount,
		"page":        page,
		"page_size":   size,
	})
}

// UpdateSale reemplaza los campos mutables de una venta
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp := c.updateSaleUC.Execute(ctx.Request.Context(), saleID, &req)
	if !resp.Success {
		if containsError(resp.Errors, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Failed to update sale",
			"errors":  resp.Errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sale updated successfully",
		"data":    resp,
	})
}

// CancelSale cancela una venta y todos sus items
func (c *SaleController) CancelSale(ctx *gin.Context) {
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	resp := c.cancelSaleUC.Execute(ctx.Request.Context(), saleID)
	if !resp.Success {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": resp.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": resp.Message})
}

// DeleteSale elimina una venta con sus items
func (c *SaleController) DeleteSale(ctx *gin.Context) {
	saleID, ok := parseSaleID(ctx)
	if !ok {
		return
	}

	resp := c.deleteSaleUC.Execute(ctx.Request.Context(), saleID)
	if !resp.Success {
		if containsError(resp.Errors, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sale not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete sale",
			"errors":  resp.Errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Sale deleted successfully"})
}

// parseSaleID valida el path param sale_id como UUID
func parseSaleID(ctx *gin.Context) (uuid.UUID, bool) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid sale_id format"})
		return uuid.Nil, false
	}
	return saleID, true
}

func queryInt(ctx *gin.Context, name string, defaultValue int) int {
	raw, ok := ctx.GetQuery(name)
	if !ok {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func containsError(errs []string, target error) bool {
	for _, e := range errs {
		if e == target.Error() {
			return true
		}
	}
	return false
}
