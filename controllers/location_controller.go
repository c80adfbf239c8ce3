package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/config"
	"github.com/incident-report/api-go/utils"
)

// LocationController resolves coordinates to an address through a keyed
// third-party geocoding API.
type LocationController struct {
	Config *config.GeocodeConfig
	Client *http.Client
}

func NewLocationController(cfg *config.GeocodeConfig) *LocationController {
	return &LocationController{
		Config: cfg,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

func (lc *LocationController) GetLocation(c *gin.Context) {
	var input struct {
		Lat string `form:"lat" binding:"required"`
		Lng string `form:"lng" binding:"required"`
	}

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Validation failed.", Errors: utils.ValidationMessages(err)})
		return
	}

	reqURL := fmt.Sprintf("%s?latlng=%s&key=%s",
		lc.Config.BaseURL,
		url.QueryEscape(input.Lat+","+input.Lng),
		url.QueryEscape(lc.Config.APIKey),
	)

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, reqURL, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Message: "Could not build geocode request."})
		return
	}

	resp, err := lc.Client.Do(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Geocoding request failed: " + err.Error()})
		return
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "Could not decode geocode response."})
		return
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		message := decoded.ErrorMessage
		if message == "" {
			message = "No address found for the given coordinates."
		}
		c.JSON(http.StatusBadRequest, Response{Message: message})
		return
	}

	c.JSON(http.StatusOK, Response{
		Message: "Location retrieved successfully.",
		Data:    gin.H{"address": decoded.Results[0].FormattedAddress},
	})
}
