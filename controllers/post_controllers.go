package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/storage"
	"github.com/venuehub/backend/utils"
)

type PostController struct {
	DB    *gorm.DB
	Store storage.ObjectStorage
}

func NewPostController(db *gorm.DB, store storage.ObjectStorage) *PostController {
	return &PostController{DB: db, Store: store}
}

// Create uploads the img1 file to object storage, persists the post and
// redirects to its page.
func (pc *PostController) Create(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")

	if title == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("title is required"))
		return
	}

	fileHeader, err := c.FormFile("img1")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("image is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer file.Close()

	key := storage.ObjectKey(fileHeader.Filename)
	imageURL, err := pc.Store.Put(c.Request.Context(), key, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	post := models.Post{
		Title:    title,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := pc.DB.Create(&post).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Post created (ID=%d, image=%s)", post.ID, key)

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/showimg/%d", post.ID))
}

// Show returns one post with its image URL.
func (pc *PostController) Show(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var post models.Post
	if err := pc.DB.First(&post, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Post detail", post)
}
