package handlers

import (
	"errors"
	"mime/multipart"
	"storefront/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productService *services.ProductService
	uploadService  *services.UploadService
}

func NewProductHandler(productService *services.ProductService, uploadService *services.UploadService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		uploadService:  uploadService,
	}
}

// List returns the public catalog newest-first.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List()
	if err != nil {
		c.JSON(500, gin.H{"detail": "Failed to list products"})
		return
	}

	c.JSON(200, products)
}

// Create inserts a product from a multipart form with a required image.
func (h *ProductHandler) Create(c *gin.Context) {
	name, price, description, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"detail": "Image file is required."})
		return
	}

	imagePath, ok := h.storeImage(c, fileHeader)
	if !ok {
		return
	}

	product, err := h.productService.Create(name, price, description, imagePath)
	if err != nil {
		c.JSON(500, gin.H{"detail": "Failed to create product"})
		return
	}

	logAudit("create", "product", strconv.FormatUint(uint64(product.ID), 10), c.ClientIP(), c.GetHeader("User-Agent"))

	c.JSON(200, gin.H{"success": true})
}

// Update rewrites a product from a multipart form. The image part is
// optional; omitting it keeps the stored image reference.
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"detail": "Invalid product ID"})
		return
	}

	name, price, description, ok := h.bindProductForm(c)
	if !ok {
		return
	}

	imagePath := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		imagePath, ok = h.storeImage(c, fileHeader)
		if !ok {
			return
		}
	}

	if err := h.productService.Update(uint(id), name, price, description, imagePath); err != nil {
		c.JSON(500, gin.H{"detail": "Failed to update product"})
		return
	}

	logAudit("update", "product", c.Param("id"), c.ClientIP(), c.GetHeader("User-Agent"))

	c.JSON(200, gin.H{"success": true})
}

// Delete removes a product by id. Deleting an id that does not exist still
// succeeds.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"detail": "Invalid product ID"})
		return
	}

	if err := h.productService.Delete(uint(id)); err != nil {
		c.JSON(500, gin.H{"detail": "Failed to delete product"})
		return
	}

	logAudit("delete", "product", c.Param("id"), c.ClientIP(), c.GetHeader("User-Agent"))

	c.JSON(200, gin.H{"success": true})
}

// bindProductForm reads and validates the shared multipart fields. On
// failure the response is already written and ok is false.
func (h *ProductHandler) bindProductForm(c *gin.Context) (name string, price int, description string, ok bool) {
	price, err := strconv.Atoi(c.PostForm("price"))
	if err != nil {
		c.JSON(400, gin.H{"detail": "Price must be an integer."})
		return "", 0, "", false
	}

	name, price, description, err = services.ValidateProductFields(c.PostForm("name"), price, c.PostForm("description"))
	if err != nil {
		var tooLong *services.FieldTooLongError
		switch {
		case errors.As(err, &tooLong):
			c.JSON(400, gin.H{"detail": tooLong.Error()})
		case errors.Is(err, services.ErrProductNameRequired):
			c.JSON(400, gin.H{"detail": "Product name is required."})
		case errors.Is(err, services.ErrPriceOutOfRange):
			c.JSON(400, gin.H{"detail": "Price must be between 1 and 1,000,000."})
		default:
			c.JSON(400, gin.H{"detail": err.Error()})
		}
		return "", 0, "", false
	}

	return name, price, description, true
}

// storeImage streams a multipart image part through the upload validator.
// On failure the response is already written and ok is false.
func (h *ProductHandler) storeImage(c *gin.Context, fileHeader *multipart.FileHeader) (string, bool) {
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(500, gin.H{"detail": "Failed to read image"})
		return "", false
	}
	defer file.Close()

	imagePath, err := h.uploadService.Store(file, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrImageRequired):
			c.JSON(400, gin.H{"detail": "Image file is required."})
		case errors.Is(err, services.ErrUnsupportedImageType):
			c.JSON(400, gin.H{"detail": "Unsupported image type. Allowed: JPEG, PNG, WebP."})
		case errors.Is(err, services.ErrImageTooLarge):
			c.JSON(400, gin.H{"detail": "Image too large. Max size is 5 MB."})
		default:
			c.JSON(500, gin.H{"detail": "Failed to store image"})
		}
		return "", false
	}

	return imagePath, true
}
