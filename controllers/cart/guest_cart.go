package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GuestOwner resolves the guest cart owner from the guest_id query
// param issued by POST /api/auth/guest.
func GuestOwner(c *gin.Context) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}
	return guestID, true
}
