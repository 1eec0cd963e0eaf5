package stores

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestId = "request-id"

func SetRequestId(c *gin.Context, id uuid.UUID) {
	c.Set(RequestId, id)
}

func GetRequestId(c *gin.Context) uuid.UUID {
	if value, ok := c.Get(RequestId); ok && value != nil {
		id, ok := value.(uuid.UUID)
		if ok {
			return id
		}
	}

	return uuid.Nil
}
