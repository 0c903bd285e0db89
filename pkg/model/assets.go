package model

import "encoding/json"

// AssetObject is one entry in an asset index. The hash doubles as the
// object's identity and its location in the content-addressed store.
type AssetObject struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// AssetIndex maps logical asset names to objects. Identical content shared
// between versions maps to the same object and is stored once.
type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
}

// ParseAssetIndex decodes asset index JSON.
func ParseAssetIndex(data []byte) (*AssetIndex, error) {
	var idx AssetIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}
