package document

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Shin-da/ojt-tracking-system-sub000/infrastructure/filesystem"
	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/web/common"
)

type Endpoint struct {
	documents *store.DocumentStore
	blobs     filesystem.Storage
}

func Register(r *gin.RouterGroup, db *gorm.DB, blobs filesystem.Storage) {
	endpoint := &Endpoint{
		documents: store.NewDocumentStore(db),
		blobs:     blobs,
	}

	r.GET("/documents", endpoint.List)
	r.POST("/documents", endpoint.Upload)
	r.GET("/documents/:id/download", endpoint.Download)
	r.DELETE("/documents/:id", endpoint.Delete)
}

func (ep *Endpoint) List(c *gin.Context) {
	docs, err := ep.documents.List()
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(docs))
}

// Upload stores the blob first, then the metadata row; an orphaned blob from
// a failed metadata write is harmless, the reverse would not be.
func (ep *Endpoint) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Missing file upload"))
		return
	}

	ext := filepath.Ext(fileHeader.Filename)
	key := uuid.NewString() + ext

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}
	defer file.Close()

	if err := ep.blobs.Write(c.Request.Context(), key, file); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	doc := model.Document{
		FileName:    fileHeader.Filename,
		StorageKey:  key,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}
	if err := ep.documents.Create(&doc); err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(doc))
}

func (ep *Endpoint) Download(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	doc, err := ep.documents.FindByID(int32(id))
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	if doc.ContentType != "" {
		c.Header("Content-Type", doc.ContentType)
	}

	if err := ep.blobs.Read(c.Request.Context(), doc.StorageKey, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid id"))
		return
	}

	doc, err := ep.documents.FindByID(int32(id))
	if err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	if err := ep.documents.DeleteByID(doc.ID); err != nil {
		status, body := common.MapError(err)
		c.JSON(status, body)
		return
	}

	if err := ep.blobs.Delete(c.Request.Context(), doc.StorageKey); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"deleted": id}))
}
