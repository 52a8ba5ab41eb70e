package dto

// HealthResponse reports liveness and loaded-dataset information.
type HealthResponse struct {
	Status          string `json:"status"`
	InstanceID      string `json:"instance_id"`
	DatasetRows     int    `json:"dataset_rows"`
	DatasetLoadedAt string `json:"dataset_loaded_at"`
}
