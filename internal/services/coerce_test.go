package services_test

import (
	"encoding/json"
	"testing"

	"lavka/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestCreateReviewInput_StringNumbers(t *testing.T) {
	var in services.CreateReviewInput
	err := json.Unmarshal([]byte(`{"user_id":"1","product_id":"2","review":"great","stars":"5"}`), &in)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), in.UserID)
	assert.Equal(t, uint(2), in.ProductID)
	assert.Equal(t, "great", in.Review)
	assert.Equal(t, 5, in.Stars)

	// Non-numeric stars reads as a missing value
	err = json.Unmarshal([]byte(`{"user_id":1,"product_id":2,"review":"x","stars":"пять"}`), &in)
	assert.NoError(t, err)
	assert.Equal(t, 0, in.Stars)
}

func TestCreateProductInput_StringPrice(t *testing.T) {
	var in services.CreateProductInput
	err := json.Unmarshal([]byte(`{"name":"Товар","price":"49.90"}`), &in)
	assert.NoError(t, err)
	assert.Equal(t, "Товар", in.Name)
	assert.InDelta(t, 49.90, in.Price, 0.0001)

	// Non-numeric price reads as a missing value
	err = json.Unmarshal([]byte(`{"name":"Товар","price":"сорок"}`), &in)
	assert.NoError(t, err)
	assert.Zero(t, in.Price)
}

func TestCreateShopInput_StringCoordinates(t *testing.T) {
	var in services.CreateShopInput
	err := json.Unmarshal([]byte(`{"address":"ул. Тверская, 1","latitude":"55.7558","longitude":37.6176}`), &in)
	assert.NoError(t, err)
	if assert.NotNil(t, in.Latitude) {
		assert.InDelta(t, 55.7558, *in.Latitude, 0.0001)
	}
	if assert.NotNil(t, in.Longitude) {
		assert.InDelta(t, 37.6176, *in.Longitude, 0.0001)
	}

	// Absent or blank coordinates stay nil
	err = json.Unmarshal([]byte(`{"address":"пр. Мира, 15","latitude":""}`), &in)
	assert.NoError(t, err)
	assert.Nil(t, in.Latitude)
	assert.Nil(t, in.Longitude)
}
