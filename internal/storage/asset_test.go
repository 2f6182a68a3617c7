package storage

import "testing"

func TestAssetValidate(t *testing.T) {
	tests := map[string]struct {
		asset  Asset[*mockStoreSpec]
		expErr bool
	}{
		"valid": {
			asset: Asset[*mockStoreSpec]{
				Version:    1,
				Identifier: "victory-square",
				Spec:       &mockStoreSpec{Name: "Victory Square"},
			},
		},
		"missing version": {
			asset: Asset[*mockStoreSpec]{
				Identifier: "victory-square",
				Spec:       &mockStoreSpec{},
			},
			expErr: true,
		},
		"missing id": {
			asset: Asset[*mockStoreSpec]{
				Version: 1,
				Spec:    &mockStoreSpec{},
			},
			expErr: true,
		},
		"id with invalid characters": {
			asset: Asset[*mockStoreSpec]{
				Version:    1,
				Identifier: "victory square!",
				Spec:       &mockStoreSpec{},
			},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()
			if tt.expErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
