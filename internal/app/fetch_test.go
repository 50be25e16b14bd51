package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/acikdeniz/credits/internal/app"
	"github.com/acikdeniz/credits/internal/app/mock"
)

func TestFetchServiceRefresh(t *testing.T) {
	t.Parallel()

	owner := app.Contributor{
		Login:      app.RepoOwner,
		ProfileURL: app.ProviderBaseURL + "/" + app.RepoOwner,
	}

	tests := []struct {
		name      string
		setupMock func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore)
		wantErr   bool
	}{
		{
			name: "bot accounts only, artifact contains synthesized owner",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(nil, nil)
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, "").
					Return(
						[]app.Account{
							{
								Login:      "helper[bot]",
								Type:       "Bot",
								ProfileURL: "https://github.com/apps/helper",
							},
						},
						`"etag1"`,
						nil,
					)
				s.EXPECT().Write([]app.Contributor{owner}).Return(nil)
				m.EXPECT().Save(gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "owner missing, prepended at head",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(nil, nil)
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, "").
					Return(
						[]app.Account{
							{
								Login:      "alice",
								Type:       "User",
								ProfileURL: "https://github.com/alice",
							},
							{
								Login:      "bob",
								Type:       "User",
								ProfileURL: "https://github.com/bob",
							},
						},
						`"etag1"`,
						nil,
					)
				s.EXPECT().
					Write([]app.Contributor{
						owner,
						{
							Login:      "alice",
							ProfileURL: "https://github.com/alice",
						},
						{
							Login:      "bob",
							ProfileURL: "https://github.com/bob",
						},
					}).
					Return(nil)
				m.EXPECT().Save(gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicates deduped, bots dropped, owner kept in place",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(nil, nil)
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, "").
					Return(
						[]app.Account{
							{
								Login:      "alice",
								Type:       "User",
								ProfileURL: "https://github.com/alice",
							},
							{
								Login:      app.RepoOwner,
								Type:       "User",
								ProfileURL: app.ProviderBaseURL + "/" + app.RepoOwner,
							},
							{
								Login:      "alice",
								Type:       "User",
								ProfileURL: "https://github.com/alice",
							},
							{
								Login:      "helper[bot]",
								Type:       "Bot",
								ProfileURL: "https://github.com/apps/helper",
							},
						},
						`"etag1"`,
						nil,
					)
				s.EXPECT().
					Write([]app.Contributor{
						{
							Login:      "alice",
							ProfileURL: "https://github.com/alice",
						},
						owner,
					}).
					Return(nil)
				m.EXPECT().Save(gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "not modified, artifact untouched",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(&app.FetchMeta{ETag: `"etag1"`, FetchedAt: time.Now()}, nil)
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, `"etag1"`).
					Return(nil, `"etag1"`, app.NotModifiedError("not modified"))
			},
			wantErr: false,
		},
		{
			name: "client error, artifact untouched",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(nil, nil)
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, "").
					Return(nil, "", errors.New("error"))
			},
			wantErr: true,
		},
		{
			name: "artifact write error",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(nil, nil)
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, "").
					Return(
						[]app.Account{
							{
								Login:      app.RepoOwner,
								Type:       "User",
								ProfileURL: app.ProviderBaseURL + "/" + app.RepoOwner,
							},
						},
						`"etag1"`,
						nil,
					)
				s.EXPECT().Write(gomock.Any()).Return(errors.New("error"))
			},
			wantErr: true,
		},
		{
			name: "meta load error is not fatal",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(nil, errors.New("error"))
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, "").
					Return(nil, `"etag1"`, nil)
				s.EXPECT().Write([]app.Contributor{owner}).Return(nil)
				m.EXPECT().Save(gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "meta save error is not fatal",
			setupMock: func(c *mock.MockGithubClient, s *mock.MockArtifactStore, m *mock.MockMetaStore) {
				m.EXPECT().Load().Return(nil, nil)
				c.EXPECT().
					Contributors(gomock.Any(), app.RepoOwner, app.RepoName, "").
					Return(nil, `"etag1"`, nil)
				s.EXPECT().Write([]app.Contributor{owner}).Return(nil)
				m.EXPECT().Save(gomock.Any()).Return(errors.New("error"))
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockGithubClient(ctrl)
			store := mock.NewMockArtifactStore(ctrl)
			meta := mock.NewMockMetaStore(ctrl)
			tt.setupMock(client, store, meta)

			service := app.NewFetchService(client, store, meta, logrus.New())
			err := service.Refresh(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestFetchServiceRefreshSavesNewETag(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockGithubClient(ctrl)
	store := mock.NewMockArtifactStore(ctrl)
	meta := mock.NewMockMetaStore(ctrl)

	meta.EXPECT().Load().Return(&app.FetchMeta{ETag: `"old"`, FetchedAt: time.Now()}, nil)
	client.EXPECT().
		Contributors(gomock.Any(), app.RepoOwner, app.RepoName, `"old"`).
		Return(
			[]app.Account{
				{
					Login:      app.RepoOwner,
					Type:       "User",
					ProfileURL: app.ProviderBaseURL + "/" + app.RepoOwner,
				},
			},
			`"new"`,
			nil,
		)
	store.EXPECT().Write(gomock.Any()).Return(nil)

	var saved app.FetchMeta
	meta.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(m app.FetchMeta) error {
			saved = m
			return nil
		})

	service := app.NewFetchService(client, store, meta, logrus.New())
	err := service.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, `"new"`, saved.ETag)
	assert.False(t, saved.FetchedAt.IsZero())
}
