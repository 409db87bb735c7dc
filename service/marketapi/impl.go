package marketapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/bearmarket/goapi/base/ctx"
	"github.com/bearmarket/goapi/base/log"
	"github.com/bearmarket/goapi/domain/metadata"
	"github.com/bearmarket/goapi/domain/order"
)

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		baseUrl: cfg.BaseUrl,
		timeout: cfg.Timeout,
	}
}

type client struct {
	client  http.Client
	baseUrl string
	timeout time.Duration
}

func (c *client) GetNfts(ctx bCtx.Ctx) ([]*metadata.Metadata, error) {
	url := fmt.Sprintf("%s/api/nfts", c.baseUrl)
	data, err := c.do(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("c.do failed")
		return nil, err
	}
	resp := &struct {
		Success bool                 `json:"success"`
		Nfts    []*metadata.Metadata `json:"nfts"`
	}{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp.Nfts, nil
}

func (c *client) GetOrders(ctx bCtx.Ctx) ([]*order.Order, error) {
	url := fmt.Sprintf("%s/api/orders", c.baseUrl)
	data, err := c.do(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("c.do failed")
		return nil, err
	}
	resp := &struct {
		Success bool           `json:"success"`
		Orders  []*order.Order `json:"orders"`
	}{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp.Orders, nil
}

func (c *client) PostOrder(ctx bCtx.Ctx, req *OrderRequest) error {
	url := fmt.Sprintf("%s/api/order", c.baseUrl)
	if _, err := c.do(ctx, "POST", url, req); err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("c.do failed")
		return err
	}
	return nil
}

func (c *client) PostBuy(ctx bCtx.Ctx, req *BuyRequest) error {
	url := fmt.Sprintf("%s/api/buy", c.baseUrl)
	if _, err := c.do(ctx, "POST", url, req); err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("c.do failed")
		return err
	}
	return nil
}

func (c *client) GetStatus(ctx bCtx.Ctx) (*StatusResp, error) {
	url := fmt.Sprintf("%s/api/status", c.baseUrl)
	data, err := c.do(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("c.do failed")
		return nil, err
	}
	resp := &StatusResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) do(ctx bCtx.Ctx, method, url string, payload interface{}) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			ctx.WithField("err", err).Error("json.Marshal failed")
			return nil, err
		}
		reqBody = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("NewRequestWithContext failed")
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{"url": url, "err": err}).Error("failed to read body")
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		// pull the reason out of the body if the server sent one
		parsed := &struct {
			Error string `json:"error"`
		}{}
		if err := json.Unmarshal(body, parsed); err == nil && parsed.Error != "" {
			return nil, &ApiError{StatusCode: resp.StatusCode, Message: parsed.Error}
		}
		ctx.WithFields(log.Fields{"url": url, "statusCode": resp.StatusCode}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	return body, nil
}
